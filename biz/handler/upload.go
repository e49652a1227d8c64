package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// Upload proxies a multipart image to the configured storage backend and
// returns the hosted URL. The folder form value selects the CDN folder and
// the resize profile.
func (h *Handler) Upload(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, errors.New("file is required"))
		return
	}
	folder := string(c.FormValue("folder"))
	if folder == "" {
		writeBadRequest(c, errors.New("folder is required"))
		return
	}

	maxSize := h.svc.MaxUploadSize()
	if fileHeader.Size > maxSize {
		writeBadRequest(c, fmt.Errorf("file exceeds the %d byte limit", maxSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	defer file.Close()

	// The limit guards against multipart headers understating the body.
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		writeError(c, err)
		return
	}
	if int64(len(data)) > maxSize {
		writeBadRequest(c, fmt.Errorf("file exceeds the %d byte limit", maxSize))
		return
	}

	result, err := h.svc.UploadImage(ctx, &service.UploadInput{
		FileName:    fileHeader.Filename,
		Folder:      folder,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, result)
}

// GetFile serves uploads stored on the local backend. S3-backed deployments
// never hit this route because ObjectURL points at the bucket directly.
func (h *Handler) GetFile(ctx context.Context, c *app.RequestContext) {
	key := strings.TrimPrefix(c.Param("filepath"), "/")
	if key == "" {
		writeBadRequest(c, errors.New("missing file path"))
		return
	}

	data, err := h.svc.GetFile(ctx, key)
	if err != nil {
		writeError(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Data(consts.StatusOK, contentType, data)
}
