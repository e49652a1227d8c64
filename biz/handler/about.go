package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

func (h *Handler) ListAboutValues(ctx context.Context, c *app.RequestContext) {
	values, err := h.svc.ListAboutValues(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, values)
}

func (h *Handler) CreateAboutValue(ctx context.Context, c *app.RequestContext) {
	var in service.AboutValueInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	value, err := h.svc.CreateAboutValue(ctx, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, value)
}

func (h *Handler) UpdateAboutValue(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	var in service.AboutValueInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	value, err := h.svc.UpdateAboutValue(ctx, id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, value)
}

func (h *Handler) DeleteAboutValue(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.DeleteAboutValue(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListAboutStats(ctx context.Context, c *app.RequestContext) {
	stats, err := h.svc.ListAboutStats(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, stats)
}

func (h *Handler) CreateAboutStat(ctx context.Context, c *app.RequestContext) {
	var in service.AboutStatInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	stat, err := h.svc.CreateAboutStat(ctx, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, stat)
}

func (h *Handler) UpdateAboutStat(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	var in service.AboutStatInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	stat, err := h.svc.UpdateAboutStat(ctx, id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, stat)
}

func (h *Handler) DeleteAboutStat(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.DeleteAboutStat(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}
