package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// ListPublishedNews serves the public news feed, newest first.
func (h *Handler) ListPublishedNews(ctx context.Context, c *app.RequestContext) {
	articles, err := h.svc.ListPublishedArticles(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, articles)
}

// GetNewsBySlug resolves one published article by its URL slug. Drafts are
// not addressable here.
func (h *Handler) GetNewsBySlug(ctx context.Context, c *app.RequestContext) {
	article, err := h.svc.GetPublishedArticleBySlug(ctx, c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, article)
}

// ListNews returns every article, drafts included, for the back office.
func (h *Handler) ListNews(ctx context.Context, c *app.RequestContext) {
	articles, err := h.svc.ListArticles(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, articles)
}

func (h *Handler) CreateNews(ctx context.Context, c *app.RequestContext) {
	var in service.NewsInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	article, err := h.svc.CreateArticle(ctx, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, article)
}

func (h *Handler) UpdateNews(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	var in service.NewsInput
	if err := c.BindAndValidate(&in); err != nil {
		writeBadRequest(c, err)
		return
	}
	article, err := h.svc.UpdateArticle(ctx, id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, article)
}

func (h *Handler) DeleteNews(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.svc.DeleteArticle(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, map[string]bool{"success": true})
}
