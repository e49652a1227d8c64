package validator

import "testing"

// minimal binary PNG header, enough for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDetectAndValidateMimeType(t *testing.T) {
	cfg := DefaultUploadConfig()

	t.Run("PNGByContent", func(t *testing.T) {
		detected, err := cfg.DetectAndValidateMimeType(pngHeader, "image/png")
		if err != nil {
			t.Fatalf("Expected PNG to pass, got %v", err)
		}
		if detected != "image/png" {
			t.Errorf("Expected image/png, got %q", detected)
		}
	})

	t.Run("SVGWithXMLDeclaration", func(t *testing.T) {
		data := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
		detected, err := cfg.DetectAndValidateMimeType(data, "image/svg+xml")
		if err != nil {
			t.Fatalf("Expected SVG to pass, got %v", err)
		}
		if detected != "image/svg+xml" {
			t.Errorf("Expected image/svg+xml, got %q", detected)
		}
	})

	t.Run("BareSVGRoot", func(t *testing.T) {
		data := []byte(`  <svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`)
		if _, err := cfg.DetectAndValidateMimeType(data, "image/svg+xml"); err != nil {
			t.Fatalf("Expected SVG to pass, got %v", err)
		}
	})

	t.Run("PlainTextDeclaredAsSVGRejected", func(t *testing.T) {
		data := []byte("tikai teksts, ne vektorgrafika")
		if _, err := cfg.DetectAndValidateMimeType(data, "image/svg+xml"); err == nil {
			t.Fatal("Expected plain text with a lying content type to be rejected")
		}
	})

	t.Run("NonSVGXMLRejected", func(t *testing.T) {
		data := []byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
		if _, err := cfg.DetectAndValidateMimeType(data, "image/svg+xml"); err == nil {
			t.Fatal("Expected non-SVG XML to be rejected")
		}
	})

	t.Run("PlainTextRejected", func(t *testing.T) {
		data := []byte("parasts teksta fails")
		if _, err := cfg.DetectAndValidateMimeType(data, "text/plain"); err == nil {
			t.Fatal("Expected plain text to be rejected")
		}
	})
}

func TestValidateFileSize(t *testing.T) {
	cfg := NewUploadConfig(1024, nil)

	if err := cfg.ValidateFileSize(1024); err != nil {
		t.Errorf("Expected size at the cap to pass, got %v", err)
	}
	if err := cfg.ValidateFileSize(1025); err == nil {
		t.Error("Expected size over the cap to fail")
	}
	if err := cfg.ValidateFileSize(0); err == nil {
		t.Error("Expected empty file to fail")
	}
}
