package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextExtract(t *testing.T) {
	ctx := context.Background()
	e := NewText(logger.New("error"))

	path := writeFile(t, "notes.txt", []byte("  Guten Tag\nWie geht's?  \n"))

	res, err := e.Extract(ctx, path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := "Guten Tag\nWie geht's?"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
}

func TestTextExtractInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	e := NewText(logger.New("error"))

	path := writeFile(t, "garbage.txt", []byte{0xff, 0xfe, 0xfd})

	res, err := e.Extract(ctx, path)
	if err == nil {
		t.Fatal("Extract() expected error for invalid UTF-8")
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty on decode failure", res.Text)
	}
}

func TestTextExtractMissingFile(t *testing.T) {
	ctx := context.Background()
	e := NewText(logger.New("error"))

	if _, err := e.Extract(ctx, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("Extract() expected error for missing file")
	}
}

func TestImageExtract(t *testing.T) {
	ctx := context.Background()
	engine := &fakeEngine{text: "Bonjour tout le monde"}
	e := NewImage(engine, logger.New("error"))

	res, err := e.Extract(ctx, "greeting.png")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Text != "Bonjour tout le monde" {
		t.Errorf("Text = %q, want OCR output", res.Text)
	}
	if engine.calls != 1 {
		t.Errorf("engine calls = %d, want 1", engine.calls)
	}
}

func TestImageExtractEngineError(t *testing.T) {
	ctx := context.Background()
	engine := &fakeEngine{err: os.ErrNotExist}
	e := NewImage(engine, logger.New("error"))

	if _, err := e.Extract(ctx, "greeting.png"); err == nil {
		t.Fatal("Extract() expected engine error to surface")
	}
}
