package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fkventa/clubsite/biz/dal/model"
)

// NavbarView bundles the navbar settings row with its menu items, the shape
// both the admin editor and the public site consume.
type NavbarView struct {
	Settings  *model.NavbarSettings  `json:"settings"`
	MenuItems []model.NavbarMenuItem `json:"menu_items"`
}

// MenuItemInput is one submitted menu entry. Order is positional.
type MenuItemInput struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Visible bool   `json:"visible"`
}

// NavbarSaveRequest updates the navbar. When MenuItems is non-nil the whole
// stored menu is replaced with the submitted list (fresh IDs).
type NavbarSaveRequest struct {
	LogoURL   *string          `json:"logo_url"`
	LogoText  *string          `json:"logo_text"`
	Clear     []string         `json:"clear,omitempty"`
	MenuItems *[]MenuItemInput `json:"menu_items"`
}

var navbarClearable = map[string]clearSpec{
	"logo_url":  {column: "logo_url", zero: ""},
	"logo_text": {column: "logo_text", zero: ""},
}

// GetNavbar returns the navbar settings plus all menu items (admin view).
func (l *Logic) GetNavbar(ctx context.Context) (*NavbarView, error) {
	settings, err := l.navbar.Get(ctx, l.db)
	if err != nil {
		return nil, err
	}
	items, err := l.menuItemDAO.List(ctx, l.db)
	if err != nil {
		return nil, err
	}
	return &NavbarView{Settings: settings, MenuItems: items}, nil
}

// GetPublicNavbar returns the navbar with only the visible menu items.
func (l *Logic) GetPublicNavbar(ctx context.Context) (*NavbarView, error) {
	settings, err := l.navbar.Get(ctx, l.db)
	if err != nil {
		return nil, err
	}
	items, err := l.menuItemDAO.ListVisible(ctx, l.db)
	if err != nil {
		return nil, err
	}
	return &NavbarView{Settings: settings, MenuItems: items}, nil
}

// SaveNavbar updates the settings row and, when a menu list was submitted,
// replaces the stored menu with it.
func (l *Logic) SaveNavbar(ctx context.Context, req *NavbarSaveRequest) (*NavbarView, error) {
	updates := map[string]any{}
	setIf(updates, "logo_url", req.LogoURL)
	setIf(updates, "logo_text", req.LogoText)
	if err := applyClears(updates, req.Clear, navbarClearable); err != nil {
		return nil, err
	}

	if req.MenuItems != nil {
		for i, item := range *req.MenuItems {
			if strings.TrimSpace(item.Label) == "" {
				return nil, fmt.Errorf("%w: menu item %d is missing a label", ErrValidation, i)
			}
			if strings.TrimSpace(item.Href) == "" {
				return nil, fmt.Errorf("%w: menu item %d is missing a link", ErrValidation, i)
			}
		}
	}

	settings, err := l.navbar.Save(ctx, l.db, updates)
	if err != nil {
		return nil, err
	}

	if req.MenuItems != nil {
		items := make([]model.NavbarMenuItem, 0, len(*req.MenuItems))
		for _, in := range *req.MenuItems {
			items = append(items, model.NavbarMenuItem{
				Label:   strings.TrimSpace(in.Label),
				Href:    strings.TrimSpace(in.Href),
				Visible: in.Visible,
			})
		}
		if _, err := l.menuItemDAO.ReplaceAll(ctx, l.db, items); err != nil {
			return nil, err
		}
	}

	stored, err := l.menuItemDAO.List(ctx, l.db)
	if err != nil {
		return nil, err
	}
	return &NavbarView{Settings: settings, MenuItems: stored}, nil
}
