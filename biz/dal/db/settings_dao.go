package db

import (
	"context"
	"errors"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsDAO is the one reconciler shared by every settings domain. Each
// settings table holds a single row with the fixed primary key
// model.SettingsRowID; reads materialize the default row when the table is
// empty, and saves update that row in place.
type SettingsDAO[T any] struct {
	defaults func() *T
}

// NewSettingsDAO creates a reconciler for one settings table. defaults must
// return a record carrying model.SettingsRowID as its primary key.
func NewSettingsDAO[T any](defaults func() *T) *SettingsDAO[T] {
	return &SettingsDAO[T]{defaults: defaults}
}

// Get returns the settings row, creating it from defaults if the table is
// empty. The OnConflict-DoNothing insert followed by a re-read keeps
// concurrent first reads from materializing more than one default.
func (dao *SettingsDAO[T]) Get(ctx context.Context, dbConn *gorm.DB) (*T, error) {
	var row T
	err := dbConn.WithContext(ctx).First(&row, model.SettingsRowID).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	def := dao.defaults()
	if err := dbConn.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(def).Error; err != nil {
		return nil, err
	}
	if err := dbConn.WithContext(ctx).First(&row, model.SettingsRowID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Save applies a partial column update to the settings row, materializing the
// default row first when the table is empty. The read and the write share one
// transaction, so two concurrent saves cannot interleave their cycles.
func (dao *SettingsDAO[T]) Save(ctx context.Context, dbConn *gorm.DB, updates map[string]any) (*T, error) {
	var row T
	err := dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, model.SettingsRowID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			def := dao.defaults()
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(def).Error; err != nil {
				return err
			}
			if err := tx.First(&row, model.SettingsRowID).Error; err != nil {
				return err
			}
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&row).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&row, model.SettingsRowID).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
