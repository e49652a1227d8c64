package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// ListPublishedEvents serves the public match calendar in chronological order.
func (h *Handler) ListPublishedEvents(ctx context.Context, c *app.RequestContext) {
	events, err := h.svc.ListPublishedEvents(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, events)
}

func (h *Handler) ListEvents(ctx context.Context, c *app.RequestContext) {
	events, err := h.svc.ListEvents(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, events)
}

func (h *Handler) CreateEvent(ctx context.Context, c *app.RequestContext) {
	var in service.CalendarInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	event, err := h.svc.CreateEvent(ctx, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, event)
}

func (h *Handler) UpdateEvent(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	var in service.CalendarInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	event, err := h.svc.UpdateEvent(ctx, id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, event)
}

func (h *Handler) DeleteEvent(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.DeleteEvent(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}
