package storage

// Package storage defines the storage abstraction behind the image upload
// proxy. Backends cover the local filesystem (development) and S3-compatible
// object storage (the hosted image CDN in production).

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// PutObject uploads a file to storage.
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error

	// GetObject retrieves a file from storage.
	// Returns a ReadCloser that must be closed by the caller.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteObject removes a file from storage.
	DeleteObject(ctx context.Context, key string) error

	// ObjectURL creates a public access URL for the object.
	// For local storage this is an API path served by the file handler.
	ObjectURL(ctx context.Context, key string) (string, error)

	// Type returns the storage type identifier ("local" or "s3").
	Type() string
}

const maxNameLen = 20

// ObjectKey builds the storage key for an uploaded file:
// "{folder}/{epoch-millis}_{sanitized-original-name}" with the original
// base name lowercased, restricted to [a-z0-9-_.] and truncated to 20 runes.
func ObjectKey(folder, filename string) string {
	name := sanitizeFileName(filename)
	key := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), name)
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" || folder == "." {
		return key
	}
	return folder + "/" + key
}

func sanitizeFileName(filename string) string {
	base := strings.ToLower(path.Base(filename))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := b.String()
	if len(out) > maxNameLen {
		out = out[:maxNameLen]
	}
	out = strings.Trim(out, "-.")
	if out == "" {
		out = "file"
	}
	return out
}
