// Package classify maps file extensions to the extractor capability that
// handles them.
package classify

import "strings"

// Capability identifies which extraction path a file takes
type Capability int

const (
	Unsupported Capability = iota
	Image
	Text
	PDF
	Docx
	Pptx
)

func (c Capability) String() string {
	switch c {
	case Image:
		return "image"
	case Text:
		return "text"
	case PDF:
		return "pdf"
	case Docx:
		return "docx"
	case Pptx:
		return "pptx"
	default:
		return "unsupported"
	}
}

var capabilities = map[string]Capability{
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".tiff": Image,
	".bmp":  Image,
	".gif":  Image,
	".txt":  Text,
	".pdf":  PDF,
	".docx": Docx,
	".pptx": Pptx,
}

// Classify returns the capability for a file extension (leading dot included).
// Matching is case-insensitive; unknown extensions map to Unsupported.
func Classify(ext string) Capability {
	if c, ok := capabilities[strings.ToLower(ext)]; ok {
		return c
	}
	return Unsupported
}
