package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

func newTestGoogle(baseURL string) *implGoogle {
	return &implGoogle{
		targetLanguage: "en",
		baseURL:        baseURL,
		client:         http.DefaultClient,
		logger:         logger.New("error"),
	}
}

func TestGoogleTranslate(t *testing.T) {
	ctx := context.Background()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.PostFormValue("q")
		w.Write([]byte(`[[["Hello ","Bonjour ",null,null,1],["world","le monde",null,null,1]],null,"fr"]`))
	}))
	defer srv.Close()

	res, err := newTestGoogle(srv.URL).Translate(ctx, "Bonjour le monde")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if res == nil {
		t.Fatal("Translate() returned nil result")
	}

	if gotQuery != "Bonjour le monde" {
		t.Errorf("sent q = %q, want source text", gotQuery)
	}
	if res.TranslatedText != "Hello world" {
		t.Errorf("TranslatedText = %q, want %q", res.TranslatedText, "Hello world")
	}
	if res.SourceLanguageCode != "fr" {
		t.Errorf("SourceLanguageCode = %q, want fr", res.SourceLanguageCode)
	}
	if res.SourceLanguageName != "French" {
		t.Errorf("SourceLanguageName = %q, want French", res.SourceLanguageName)
	}
}

func TestGoogleTranslateLongText(t *testing.T) {
	ctx := context.Background()

	// Multi-page OCR output easily exceeds URL length limits; the form body
	// must carry it intact
	long := strings.Repeat("Der schnelle braune Fuchs springt. ", 1000)

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.PostFormValue("q")
		w.Write([]byte(`[[["The quick brown fox jumps.","x",null,null,1]],null,"de"]`))
	}))
	defer srv.Close()

	res, err := newTestGoogle(srv.URL).Translate(ctx, long)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if res == nil {
		t.Fatal("Translate() returned nil result")
	}
	if gotQuery != long {
		t.Errorf("service received %d bytes, want the full %d-byte text", len(gotQuery), len(long))
	}
}

func TestGoogleTranslateEmptyInput(t *testing.T) {
	ctx := context.Background()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	tr := newTestGoogle(srv.URL)

	for _, text := range []string{"", "   ", "\n\t"} {
		res, err := tr.Translate(ctx, text)
		if err != nil {
			t.Errorf("Translate(%q) error = %v", text, err)
		}
		if res != nil {
			t.Errorf("Translate(%q) = %+v, want nil", text, res)
		}
	}
	if called {
		t.Error("empty input must not hit the service")
	}
}

func TestGoogleTranslateServiceError(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestGoogle(srv.URL).Translate(ctx, "hallo"); err == nil {
		t.Fatal("Translate() expected error on non-200 status")
	}
}

func TestGoogleTranslateMalformedResponse(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	if _, err := newTestGoogle(srv.URL).Translate(ctx, "hallo"); err == nil {
		t.Fatal("Translate() expected error on malformed response")
	}
}

func TestParseGoogleResponseUnknownLanguage(t *testing.T) {
	translated, code, err := parseGoogleResponse([]byte(`[[["hi","x",null,null,1]],null,"xx"]`))
	if err != nil {
		t.Fatalf("parseGoogleResponse() error = %v", err)
	}
	if translated != "hi" || code != "xx" {
		t.Errorf("got (%q, %q), want (hi, xx)", translated, code)
	}
	if LanguageName(code) != "Unknown" {
		t.Errorf("LanguageName(%q) = %q, want Unknown", code, LanguageName(code))
	}
}
