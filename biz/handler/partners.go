package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// ListActivePartners serves the public partner strip in sort order.
func (h *Handler) ListActivePartners(ctx context.Context, c *app.RequestContext) {
	partners, err := h.svc.ListActivePartners(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, partners)
}

func (h *Handler) ListPartners(ctx context.Context, c *app.RequestContext) {
	partners, err := h.svc.ListPartners(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, partners)
}

func (h *Handler) CreatePartner(ctx context.Context, c *app.RequestContext) {
	var in service.PartnerInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	partner, err := h.svc.CreatePartner(ctx, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, partner)
}

func (h *Handler) UpdatePartner(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	var in service.PartnerInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	partner, err := h.svc.UpdatePartner(ctx, id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, partner)
}

func (h *Handler) DeletePartner(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.DeletePartner(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}
