package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fkventa/clubsite/biz/service"
)

// Settings domains addressable through /settings/:domain.
const (
	DomainHero     = "hero"
	DomainTopBar   = "topbar"
	DomainNavbar   = "navbar"
	DomainEvents   = "events"
	DomainPartners = "partners"
	DomainAbout    = "about"
)

// GetSettings serves the public read side of every settings domain. A first
// read materializes the Latvian defaults, so the frontend always receives a
// complete document.
func (h *Handler) GetSettings(ctx context.Context, c *app.RequestContext) {
	domain := c.Param("domain")
	var (
		payload any
		err     error
	)
	switch domain {
	case DomainHero:
		payload, err = h.svc.GetHeroSettings(ctx)
	case DomainTopBar:
		payload, err = h.svc.GetTopBarSettings(ctx)
	case DomainNavbar:
		payload, err = h.svc.GetPublicNavbar(ctx)
	case DomainEvents:
		payload, err = h.svc.GetEventsSettings(ctx)
	case DomainPartners:
		payload, err = h.svc.GetPartnersSettings(ctx)
	case DomainAbout:
		payload, err = h.svc.GetAbout(ctx)
	default:
		writeBadRequest(c, errors.New("unknown settings domain: "+domain))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, payload)
}

// GetAdminSettings mirrors GetSettings but returns the unfiltered admin view
// where the two differ (navbar includes hidden menu items).
func (h *Handler) GetAdminSettings(ctx context.Context, c *app.RequestContext) {
	domain := c.Param("domain")
	if domain != DomainNavbar {
		h.GetSettings(ctx, c)
		return
	}
	view, err := h.svc.GetNavbar(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, view)
}

// SaveSettings handles admin writes for every settings domain. Bodies use
// pointer fields, so omitted keys leave stored values untouched; the clear
// list names fields to reset explicitly.
func (h *Handler) SaveSettings(ctx context.Context, c *app.RequestContext) {
	domain := c.Param("domain")
	var (
		payload any
		err     error
	)
	switch domain {
	case DomainHero:
		var req service.HeroSaveRequest
		if bindErr := c.BindAndValidate(&req); bindErr != nil {
			writeBadRequest(c, bindErr)
			return
		}
		payload, err = h.svc.SaveHeroSettings(ctx, &req)
	case DomainTopBar:
		var req service.TopBarSaveRequest
		if bindErr := c.BindAndValidate(&req); bindErr != nil {
			writeBadRequest(c, bindErr)
			return
		}
		payload, err = h.svc.SaveTopBarSettings(ctx, &req)
	case DomainNavbar:
		var req service.NavbarSaveRequest
		if bindErr := c.BindAndValidate(&req); bindErr != nil {
			writeBadRequest(c, bindErr)
			return
		}
		payload, err = h.svc.SaveNavbar(ctx, &req)
	case DomainEvents:
		var req service.EventsSaveRequest
		if bindErr := c.BindAndValidate(&req); bindErr != nil {
			writeBadRequest(c, bindErr)
			return
		}
		payload, err = h.svc.SaveEventsSettings(ctx, &req)
	case DomainPartners:
		var req service.PartnersSaveRequest
		if bindErr := c.BindAndValidate(&req); bindErr != nil {
			writeBadRequest(c, bindErr)
			return
		}
		payload, err = h.svc.SavePartnersSettings(ctx, &req)
	case DomainAbout:
		var req service.AboutSaveRequest
		if bindErr := c.BindAndValidate(&req); bindErr != nil {
			writeBadRequest(c, bindErr)
			return
		}
		payload, err = h.svc.SaveAboutSettings(ctx, &req)
	default:
		writeBadRequest(c, errors.New("unknown settings domain: "+domain))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(consts.StatusOK, payload)
}
