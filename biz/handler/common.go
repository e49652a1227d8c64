package handler

import (
	"context"
	"errors"
	"io/fs"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"

	"github.com/fkventa/clubsite/biz/service"
)

// Handler exposes the site API over HTTP. All domain behaviour lives in the
// service layer; handlers only bind, dispatch and translate errors.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Ping is a simple health check endpoint.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, map[string]string{"message": "pong"})
}

var notFoundErrs = []error{
	gorm.ErrRecordNotFound,
	fs.ErrNotExist,
	service.ErrArticleNotFound,
	service.ErrGalleryItemNotFound,
	service.ErrEventNotFound,
	service.ErrPartnerNotFound,
	service.ErrAboutValueNotFound,
	service.ErrAboutStatNotFound,
}

// writeError maps service errors onto HTTP statuses. Validation failures are
// the client's fault, missing records are 404, a missing backend dependency
// is 503 and everything else is a 500.
func writeError(c *app.RequestContext, err error) {
	status := consts.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = consts.StatusBadRequest
	case errors.Is(err, service.ErrStorageUnavailable),
		errors.Is(err, service.ErrMailerUnavailable):
		status = consts.StatusServiceUnavailable
	default:
		for _, sentinel := range notFoundErrs {
			if errors.Is(err, sentinel) {
				status = consts.StatusNotFound
				break
			}
		}
	}
	c.JSON(status, map[string]string{"error": err.Error()})
}

func writeBadRequest(c *app.RequestContext, err error) {
	c.JSON(consts.StatusBadRequest, map[string]string{"error": err.Error()})
}

// paramID parses the :id route segment.
func paramID(c *app.RequestContext) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id: " + raw)
	}
	return uint(id), nil
}
