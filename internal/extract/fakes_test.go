package extract

import "context"

type fakeEngine struct {
	text  string
	err   error
	calls int
}

func (f *fakeEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeRasterizer struct {
	path  string
	err   error
	calls int
}

func (f *fakeRasterizer) PageToImage(ctx context.Context, pdfPath string, page int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

func (f *fakeRasterizer) Close() error { return nil }
