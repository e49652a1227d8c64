package storage

import (
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	t.Run("FolderPrefix", func(t *testing.T) {
		key := ObjectKey("gallery", "photo.png")
		if !strings.HasPrefix(key, "gallery/") {
			t.Errorf("Expected gallery/ prefix, got %q", key)
		}
		if !strings.HasSuffix(key, "_photo.png") {
			t.Errorf("Expected sanitized name suffix, got %q", key)
		}
	})

	t.Run("SanitizesName", func(t *testing.T) {
		key := ObjectKey("news", "Spēles Foto (1).PNG")
		if strings.ContainsAny(key, " ()ēĒ") {
			t.Errorf("Expected sanitized key, got %q", key)
		}
	})

	t.Run("EscapingFolderFlattened", func(t *testing.T) {
		key := ObjectKey("../secrets", "x.png")
		if strings.Contains(key, "..") {
			t.Errorf("Expected cleaned folder, got %q", key)
		}
	})

	t.Run("EmptyFolder", func(t *testing.T) {
		key := ObjectKey("", "x.png")
		if strings.Contains(key, "/") {
			t.Errorf("Expected bare key without folder, got %q", key)
		}
	})

	t.Run("EmptyNameFallsBack", func(t *testing.T) {
		key := ObjectKey("gallery", "???")
		if !strings.HasSuffix(key, "_file") {
			t.Errorf("Expected file fallback name, got %q", key)
		}
	})
}
