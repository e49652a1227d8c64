package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// NamedayToday returns today's Latvian name days. Upstream failures degrade
// into a fallback payload rather than an error, so this endpoint always
// answers 200.
func (h *Handler) NamedayToday(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, h.svc.NamedayToday(ctx))
}

type namedayDateRequest struct {
	Date string `json:"date"`
}

// NamedayForDate returns the name days for a given "2006-01-02" date.
func (h *Handler) NamedayForDate(ctx context.Context, c *app.RequestContext) {
	var req namedayDateRequest
	if err := c.BindAndValidate(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	result, err := h.svc.NamedayForDate(ctx, req.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, result)
}

// NamedayRefresh drops the cache and re-fetches today's entry.
func (h *Handler) NamedayRefresh(ctx context.Context, c *app.RequestContext) {
	h.svc.NamedayRefresh()
	c.JSON(consts.StatusOK, h.svc.NamedayToday(ctx))
}
