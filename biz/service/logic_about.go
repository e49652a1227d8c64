package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// AboutView bundles the about settings with its value and stat lists.
type AboutView struct {
	Settings *model.AboutSettings `json:"settings"`
	Values   []model.AboutValue   `json:"values"`
	Stats    []model.AboutStat    `json:"stats"`
}

// GetAbout returns the complete about section.
func (l *Logic) GetAbout(ctx context.Context) (*AboutView, error) {
	settings, err := l.about.Get(ctx, l.db)
	if err != nil {
		return nil, err
	}
	values, err := l.aboutValueDAO.List(ctx, l.db)
	if err != nil {
		return nil, err
	}
	stats, err := l.aboutStatDAO.List(ctx, l.db)
	if err != nil {
		return nil, err
	}
	return &AboutView{Settings: settings, Values: values, Stats: stats}, nil
}

// AboutValueInput is a full about-value payload. Icon keys outside the
// known set fall back to the default icon.
type AboutValueInput struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (in *AboutValueInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	return nil
}

func (in *AboutValueInput) apply(value *model.AboutValue) {
	value.Title = strings.TrimSpace(in.Title)
	value.Text = in.Text
	value.Icon = model.NormalizeIcon(in.Icon)
	value.SortOrder = in.SortOrder
}

func (l *Logic) CreateAboutValue(ctx context.Context, in *AboutValueInput) (*model.AboutValue, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	value := &model.AboutValue{}
	in.apply(value)
	if err := l.aboutValueDAO.Create(ctx, l.db, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (l *Logic) UpdateAboutValue(ctx context.Context, id uint, in *AboutValueInput) (*model.AboutValue, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	value, err := l.aboutValueDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutValueNotFound
		}
		return nil, err
	}
	in.apply(value)
	if err := l.aboutValueDAO.Update(ctx, l.db, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutValueNotFound
		}
		return nil, err
	}
	return value, nil
}

func (l *Logic) DeleteAboutValue(ctx context.Context, id uint) error {
	if err := l.aboutValueDAO.Delete(ctx, l.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAboutValueNotFound
		}
		return err
	}
	return nil
}

func (l *Logic) ListAboutValues(ctx context.Context) ([]model.AboutValue, error) {
	return l.aboutValueDAO.List(ctx, l.db)
}

// AboutStatInput is a full about-stat payload. Icon and color keys outside
// the known sets fall back to the default variants.
type AboutStatInput struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

func (in *AboutStatInput) validate() error {
	if strings.TrimSpace(in.Label) == "" {
		return fmt.Errorf("%w: label is required", ErrValidation)
	}
	if strings.TrimSpace(in.Value) == "" {
		return fmt.Errorf("%w: value is required", ErrValidation)
	}
	return nil
}

func (in *AboutStatInput) apply(stat *model.AboutStat) {
	stat.Label = strings.TrimSpace(in.Label)
	stat.Value = strings.TrimSpace(in.Value)
	stat.Icon = model.NormalizeIcon(in.Icon)
	stat.Color = model.NormalizeColor(in.Color)
	stat.SortOrder = in.SortOrder
}

func (l *Logic) CreateAboutStat(ctx context.Context, in *AboutStatInput) (*model.AboutStat, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	stat := &model.AboutStat{}
	in.apply(stat)
	if err := l.aboutStatDAO.Create(ctx, l.db, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

func (l *Logic) UpdateAboutStat(ctx context.Context, id uint, in *AboutStatInput) (*model.AboutStat, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	stat, err := l.aboutStatDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutStatNotFound
		}
		return nil, err
	}
	in.apply(stat)
	if err := l.aboutStatDAO.Update(ctx, l.db, stat); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutStatNotFound
		}
		return nil, err
	}
	return stat, nil
}

func (l *Logic) DeleteAboutStat(ctx context.Context, id uint) error {
	if err := l.aboutStatDAO.Delete(ctx, l.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAboutStatNotFound
		}
		return err
	}
	return nil
}

func (l *Logic) ListAboutStats(ctx context.Context) ([]model.AboutStat, error) {
	return l.aboutStatDAO.List(ctx, l.db)
}
