package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want Capability
	}{
		{"png", ".png", Image},
		{"jpg", ".jpg", Image},
		{"jpeg", ".jpeg", Image},
		{"tiff", ".tiff", Image},
		{"bmp", ".bmp", Image},
		{"gif", ".gif", Image},
		{"txt", ".txt", Text},
		{"pdf", ".pdf", PDF},
		{"docx", ".docx", Docx},
		{"pptx", ".pptx", Pptx},
		{"unknown extension", ".xyz", Unsupported},
		{"no extension", "", Unsupported},
		{"doc is not docx", ".doc", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ext); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{".png", ".PNG"},
		{".jpg", ".Jpg"},
		{".pdf", ".PDF"},
		{".docx", ".DocX"},
		{".pptx", ".PPTX"},
		{".txt", ".TXT"},
	}

	for _, p := range pairs {
		lower, upper := Classify(p[0]), Classify(p[1])
		if lower != upper {
			t.Errorf("Classify(%q) = %v but Classify(%q) = %v", p[0], lower, p[1], upper)
		}
		if lower == Unsupported {
			t.Errorf("Classify(%q) = Unsupported, want a supported capability", p[0])
		}
	}
}
