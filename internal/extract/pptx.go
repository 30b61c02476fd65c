package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

var slidePattern = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

type pptxExtractor struct {
	logger logger.Logger
}

// NewPptx creates an extractor for PowerPoint decks. Slides are visited in
// deck order, shapes in their stored order; every text-bearing shape
// contributes one line.
func NewPptx(log logger.Logger) Extractor {
	return &pptxExtractor{logger: log}
}

func (e *pptxExtractor) Extract(ctx context.Context, path string) (Result, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer archive.Close()

	slides := slideFiles(archive)
	e.logger.Debug(ctx, "Pptx %s has %d slides", filepath.Base(path), len(slides))

	var lines []string
	var notes []string
	for _, s := range slides {
		shapes, err := slideShapeTexts(s.file)
		if err != nil {
			notes = append(notes, fmt.Sprintf("slide %d: %v", s.num, err))
			continue
		}
		lines = append(lines, shapes...)
	}

	return Result{
		Text:  strings.TrimSpace(strings.Join(lines, "\n")),
		Notes: notes,
	}, nil
}

type slideFile struct {
	num  int
	file *zip.File
}

// slideFiles returns the slide parts of the archive ordered by slide number.
// The zip directory order is not the deck order; slide9 sorts after slide10
// lexically, so the numeric suffix decides.
func slideFiles(archive *zip.ReadCloser) []slideFile {
	var slides []slideFile
	for _, f := range archive.File {
		m := slidePattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: num, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })
	return slides
}

// slideShapeTexts parses one slide part and returns one line per shape that
// carries text. Shapes without a text body are skipped.
func slideShapeTexts(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)

	var shapes []string
	var current strings.Builder
	inShape := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse part: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inShape = true
				current.Reset()
			case "t":
				if inShape {
					inText = true
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				// paragraph boundary inside a text body; keep the shape on
				// one line but don't glue words together
				if inShape {
					current.WriteString(" ")
				}
			case "sp":
				inShape = false
				if text := strings.TrimSpace(current.String()); text != "" {
					shapes = append(shapes, text)
				}
			}
		}
	}

	return shapes, nil
}
