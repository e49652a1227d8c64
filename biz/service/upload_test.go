package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	dal "github.com/fkventa/clubsite/biz/dal/db"
	"github.com/fkventa/clubsite/pkg/storage"
	"github.com/fkventa/clubsite/pkg/validator"
)

// memStorage keeps uploaded objects in a map so the upload path can be
// exercised without a filesystem or an S3 endpoint.
type memStorage struct {
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (m *memStorage) PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.objects[key] = buf
	return nil
}

func (m *memStorage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, errors.New("object not found: " + key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) DeleteObject(ctx context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStorage) ObjectURL(ctx context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (m *memStorage) Type() string { return "memory" }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func newUploadService(t *testing.T, store storage.Storage) *Service {
	t.Helper()
	db := dal.SetupTestDB(t)
	t.Cleanup(func() { dal.CleanupTestDB(t, db) })
	return New(db, store, nil, nil, nil)
}

func TestMaxUploadSize(t *testing.T) {
	db := dal.SetupTestDB(t)
	t.Cleanup(func() { dal.CleanupTestDB(t, db) })

	svc := New(db, nil, nil, nil, validator.NewUploadConfig(1024, nil))
	if got := svc.MaxUploadSize(); got != 1024 {
		t.Errorf("Expected configured cap 1024, got %d", got)
	}

	svc = New(db, nil, nil, nil, nil)
	if got := svc.MaxUploadSize(); got != validator.DefaultMaxUploadSize {
		t.Errorf("Expected default cap %d, got %d", validator.DefaultMaxUploadSize, got)
	}
}

func TestUploadImage(t *testing.T) {
	store := newMemStorage()
	svc := newUploadService(t, store)
	ctx := context.Background()

	t.Run("ValidPNG", func(t *testing.T) {
		data := pngBytes(t, 64, 48)
		result, err := svc.UploadImage(ctx, &UploadInput{
			FileName:    "Komandas Foto 2026.png",
			Folder:      "gallery",
			ContentType: "image/png",
			Data:        data,
		})
		if err != nil {
			t.Fatalf("UploadImage failed: %v", err)
		}
		if result.Width != 64 || result.Height != 48 {
			t.Errorf("Expected 64x48, got %dx%d", result.Width, result.Height)
		}
		if !strings.HasPrefix(result.PublicID, "gallery/") {
			t.Errorf("Expected folder prefix in key, got %q", result.PublicID)
		}
		if !strings.Contains(result.URL, "?tr=w_1920") {
			t.Errorf("Expected default resize hint in URL, got %q", result.URL)
		}
		if _, ok := store.objects[result.PublicID]; !ok {
			t.Error("Expected object stored under the returned key")
		}
	})

	t.Run("LogoFolderGetsSmallerBound", func(t *testing.T) {
		result, err := svc.UploadImage(ctx, &UploadInput{
			FileName:    "sponsor.png",
			Folder:      "partner-logos",
			ContentType: "image/png",
			Data:        pngBytes(t, 32, 32),
		})
		if err != nil {
			t.Fatalf("UploadImage failed: %v", err)
		}
		if !strings.Contains(result.URL, "?tr=w_512") {
			t.Errorf("Expected logo resize hint, got %q", result.URL)
		}
	})

	t.Run("OversizedRejected", func(t *testing.T) {
		big := make([]byte, 6*1024*1024)
		copy(big, pngBytes(t, 1, 1))
		_, err := svc.UploadImage(ctx, &UploadInput{
			FileName:    "big.png",
			Folder:      "gallery",
			ContentType: "image/png",
			Data:        big,
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation for oversized file, got %v", err)
		}
	})

	t.Run("NonImageRejected", func(t *testing.T) {
		_, err := svc.UploadImage(ctx, &UploadInput{
			FileName:    "notes.txt",
			Folder:      "gallery",
			ContentType: "text/plain",
			Data:        []byte("tikai teksts, ne bilde"),
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation for non-image, got %v", err)
		}
	})

	t.Run("NoStorageConfigured", func(t *testing.T) {
		svc := newUploadService(t, nil)
		_, err := svc.UploadImage(ctx, &UploadInput{
			FileName:    "x.png",
			Folder:      "gallery",
			ContentType: "image/png",
			Data:        pngBytes(t, 1, 1),
		})
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Errorf("Expected ErrStorageUnavailable, got %v", err)
		}
	})
}
