package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// ListActiveGallery serves the public gallery grid.
func (h *Handler) ListActiveGallery(ctx context.Context, c *app.RequestContext) {
	items, err := h.svc.ListActiveGalleryItems(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, items)
}

func (h *Handler) ListGallery(ctx context.Context, c *app.RequestContext) {
	items, err := h.svc.ListGalleryItems(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, items)
}

func (h *Handler) CreateGalleryItem(ctx context.Context, c *app.RequestContext) {
	var in service.GalleryInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	item, err := h.svc.CreateGalleryItem(ctx, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, item)
}

func (h *Handler) UpdateGalleryItem(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	var in service.GalleryInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	item, err := h.svc.UpdateGalleryItem(ctx, id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, item)
}

func (h *Handler) DeleteGalleryItem(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.DeleteGalleryItem(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}
