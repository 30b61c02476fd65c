package extract

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

const slideTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:cSld><p:spTree>%s</p:spTree></p:cSld>
</p:sld>`

func textShape(text string) string {
	return fmt.Sprintf(`<p:sp><p:txBody><a:p><a:r><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`, text)
}

// writeDeck builds a minimal pptx archive with the given slide bodies, keyed
// by slide number
func writeDeck(t *testing.T, slides map[int]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pptx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for num, body := range slides {
		part, err := w.Create(fmt.Sprintf("ppt/slides/slide%d.xml", num))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte(fmt.Sprintf(slideTemplate, body))); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestPptxExtractShapeOrder(t *testing.T) {
	ctx := context.Background()
	e := NewPptx(logger.New("error"))

	path := writeDeck(t, map[int]string{
		1: textShape("slide1-shape1") + textShape("slide1-shape2") + `<p:sp><p:nvSpPr/></p:sp>`,
		2: textShape("slide2-shape1"),
	})

	res, err := e.Extract(ctx, path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "slide1-shape1\nslide1-shape2\nslide2-shape1"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
}

func TestPptxExtractSlideNumericOrder(t *testing.T) {
	ctx := context.Background()
	e := NewPptx(logger.New("error"))

	// slide10 sorts before slide9 lexically; deck order must win
	path := writeDeck(t, map[int]string{
		9:  textShape("ninth"),
		10: textShape("tenth"),
		2:  textShape("second"),
	})

	res, err := e.Extract(ctx, path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "second\nninth\ntenth"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
}

func TestPptxExtractShapeParagraphsStayOnOneLine(t *testing.T) {
	ctx := context.Background()
	e := NewPptx(logger.New("error"))

	shape := `<p:sp><p:txBody><a:p><a:r><a:t>first</a:t></a:r></a:p><a:p><a:r><a:t>second</a:t></a:r></a:p></p:txBody></p:sp>`
	path := writeDeck(t, map[int]string{1: shape})

	res, err := e.Extract(ctx, path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if res.Text != "first second" {
		t.Errorf("Text = %q, want paragraphs joined on one line", res.Text)
	}
}

func TestPptxExtractEmptyDeck(t *testing.T) {
	ctx := context.Background()
	e := NewPptx(logger.New("error"))

	path := writeDeck(t, map[int]string{1: `<p:sp><p:nvSpPr/></p:sp>`})

	res, err := e.Extract(ctx, path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty for deck without text shapes", res.Text)
	}
}

func TestPptxExtractNotAZip(t *testing.T) {
	ctx := context.Background()
	e := NewPptx(logger.New("error"))

	path := writeFile(t, "broken.pptx", []byte("not a zip archive"))

	if _, err := e.Extract(ctx, path); err == nil {
		t.Fatal("Extract() expected error for corrupt archive")
	}
}
