package db

import (
	"context"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// MenuItemDAO persists the navigation menu list.
type MenuItemDAO struct{}

func NewMenuItemDAO() *MenuItemDAO { return &MenuItemDAO{} }

// List returns all menu items ordered for display.
func (dao *MenuItemDAO) List(ctx context.Context, db *gorm.DB) ([]model.NavbarMenuItem, error) {
	var items []model.NavbarMenuItem
	if err := db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListVisible returns only the items shown on the public site.
func (dao *MenuItemDAO) ListVisible(ctx context.Context, db *gorm.DB) ([]model.NavbarMenuItem, error) {
	var items []model.NavbarMenuItem
	if err := db.WithContext(ctx).
		Where("visible = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceAll deletes every stored menu item and inserts the submitted list
// in one transaction. Item IDs do not survive a save; the menu is small and
// the admin UI holds the full list, so replace-all is the documented
// contract rather than a diff.
func (dao *MenuItemDAO) ReplaceAll(ctx context.Context, db *gorm.DB, items []model.NavbarMenuItem) ([]model.NavbarMenuItem, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.NavbarMenuItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].SortOrder = i
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
