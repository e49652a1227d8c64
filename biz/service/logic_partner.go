package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// PartnerInput is a full partner payload.
type PartnerInput struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
	SortOrder  int    `json:"sort_order"`
	Active     bool   `json:"active"`
}

func (in *PartnerInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

func (in *PartnerInput) apply(partner *model.Partner) {
	partner.Name = strings.TrimSpace(in.Name)
	partner.LogoURL = in.LogoURL
	partner.WebsiteURL = in.WebsiteURL
	partner.SortOrder = in.SortOrder
	partner.Active = in.Active
}

func (l *Logic) CreatePartner(ctx context.Context, in *PartnerInput) (*model.Partner, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	partner := &model.Partner{}
	in.apply(partner)
	if err := l.partnerDAO.Create(ctx, l.db, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (l *Logic) UpdatePartner(ctx context.Context, id uint, in *PartnerInput) (*model.Partner, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	partner, err := l.partnerDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	in.apply(partner)
	if err := l.partnerDAO.Update(ctx, l.db, partner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return partner, nil
}

func (l *Logic) DeletePartner(ctx context.Context, id uint) error {
	if err := l.partnerDAO.Delete(ctx, l.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnerNotFound
		}
		return err
	}
	return nil
}

func (l *Logic) ListPartners(ctx context.Context) ([]model.Partner, error) {
	return l.partnerDAO.List(ctx, l.db)
}

func (l *Logic) ListActivePartners(ctx context.Context) ([]model.Partner, error) {
	return l.partnerDAO.ListActive(ctx, l.db)
}
