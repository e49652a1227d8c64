package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// Contact accepts a contact form submission and fans it out over SMTP.
func (h *Handler) Contact(ctx context.Context, c *app.RequestContext) {
	var in service.ContactInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.SubmitContact(ctx, &in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}
