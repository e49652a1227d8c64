package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fkventa/clubsite/pkg/storage"
)

// ErrStorageUnavailable is returned when no storage backend is configured.
var ErrStorageUnavailable = errors.New("storage backend not configured")

// UploadInput carries one multipart image upload.
type UploadInput struct {
	FileName    string
	Folder      string
	ContentType string
	Data        []byte
}

// UploadResult mirrors what the admin UI expects back from the upload proxy.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// UploadImage validates the file, stores it under a timestamped key and
// returns the hosted URL. The caller persists the URL into whichever
// settings or collection field it belongs to; the proxy does not know what
// the image is for.
func (s *Service) UploadImage(ctx context.Context, in *UploadInput) (*UploadResult, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	if err := s.upload.Validate(int64(len(in.Data)), in.ContentType, in.Data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	key := storage.ObjectKey(in.Folder, in.FileName)
	width, height := imageDimensions(in.Data)

	if err := s.storage.PutObject(ctx, key, bytes.NewReader(in.Data), in.ContentType, int64(len(in.Data))); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	url, err := s.storage.ObjectURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("resolve upload url: %w", err)
	}
	url = withTransform(url, in.Folder)

	return &UploadResult{
		URL:      url,
		PublicID: key,
		Width:    width,
		Height:   height,
	}, nil
}

// MaxUploadSize reports the configured upload cap so callers can refuse
// oversized bodies before buffering them.
func (s *Service) MaxUploadSize() int64 {
	return s.upload.MaxFileSize
}

// GetFile streams a stored object, used to serve local-storage uploads.
func (s *Service) GetFile(ctx context.Context, key string) ([]byte, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	rc, err := s.storage.GetObject(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// imageDimensions decodes just the image header. SVG and other formats the
// stdlib cannot identify report zero dimensions.
func imageDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// Resize hints appended to the hosted URL. The CDN applies tighter bounds
// to logo uploads than to page imagery.
const (
	logoTransform    = "tr=w_512,q_90"
	defaultTransform = "tr=w_1920,q_85"
)

func withTransform(url, folder string) string {
	transform := defaultTransform
	if strings.Contains(strings.ToLower(folder), "logo") {
		transform = logoTransform
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + transform
}
