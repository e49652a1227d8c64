package validator

import (
	"errors"
	"net/http"
	"strings"
)

// Default upload constraints
const (
	DefaultMaxUploadSize = 5 * 1024 * 1024 // 5MB
)

// DefaultAllowedMimeTypes contains the whitelist of image MIME types
// accepted by the upload proxy.
var DefaultAllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// UploadConfig defines constraints for file uploads.
type UploadConfig struct {
	MaxFileSize      int64
	AllowedMimeTypes map[string]bool
}

// DefaultUploadConfig returns the default upload configuration.
func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize:      DefaultMaxUploadSize,
		AllowedMimeTypes: DefaultAllowedMimeTypes,
	}
}

// NewUploadConfig builds an UploadConfig from a size cap and MIME whitelist,
// falling back to defaults for missing values.
func NewUploadConfig(maxSize int64, allowedTypes []string) *UploadConfig {
	cfg := DefaultUploadConfig()
	if maxSize > 0 {
		cfg.MaxFileSize = maxSize
	}
	if len(allowedTypes) > 0 {
		allowed := make(map[string]bool, len(allowedTypes))
		for _, t := range allowedTypes {
			allowed[strings.ToLower(strings.TrimSpace(t))] = true
		}
		cfg.AllowedMimeTypes = allowed
	}
	return cfg
}

// ValidateFileSize checks if the file size is within the allowed limit.
func (c *UploadConfig) ValidateFileSize(size int64) error {
	if size <= 0 {
		return errors.New("file is empty")
	}
	if size > c.MaxFileSize {
		return errors.New("file too large")
	}
	return nil
}

// ValidateMimeType checks if the MIME type is in the allowed whitelist.
func (c *UploadConfig) ValidateMimeType(mimeType string) error {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if normalized == "" {
		return errors.New("missing content type")
	}
	// Handle MIME types with parameters (e.g., "image/svg+xml; charset=utf-8")
	if idx := strings.Index(normalized, ";"); idx > 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	if !c.AllowedMimeTypes[normalized] {
		return errors.New("unsupported file type")
	}
	return nil
}

// DetectAndValidateMimeType detects the MIME type from file content and
// validates it. SVG is the one allowed type http.DetectContentType cannot
// identify, so content that actually starts like an SVG document is
// reclassified; the declared type alone is never trusted.
func (c *UploadConfig) DetectAndValidateMimeType(data []byte, declaredType string) (string, error) {
	detectedType := http.DetectContentType(data)
	if idx := strings.Index(detectedType, ";"); idx > 0 {
		detectedType = strings.TrimSpace(detectedType[:idx])
	}

	if (detectedType == "text/xml" || detectedType == "text/plain") && looksLikeSVG(data) {
		detectedType = "image/svg+xml"
	}

	if err := c.ValidateMimeType(detectedType); err != nil {
		return detectedType, err
	}
	return detectedType, nil
}

// looksLikeSVG reports whether the content opens with an <svg> root or an
// XML declaration followed by one.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	text := strings.ToLower(strings.TrimLeft(string(head), " \t\r\n\uFEFF"))
	if strings.HasPrefix(text, "<svg") {
		return true
	}
	if !strings.HasPrefix(text, "<?xml") {
		return false
	}
	return strings.Contains(text, "<svg")
}

// Validate performs full validation on an upload.
func (c *UploadConfig) Validate(size int64, mimeType string, data []byte) error {
	if err := c.ValidateFileSize(size); err != nil {
		return err
	}
	if _, err := c.DetectAndValidateMimeType(data, mimeType); err != nil {
		return err
	}
	return nil
}
