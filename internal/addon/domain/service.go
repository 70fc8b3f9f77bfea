package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidName         = errors.New("invalid_service_name")
	ErrInvalidPrice        = errors.New("invalid_price")
	ErrInvalidID           = errors.New("invalid_addon_id")
	ErrNotFound            = errors.New("addon_not_found")
)

type CreateAddonRequest struct {
	ServiceName     string   `json:"service_name"`
	ServiceCategory string   `json:"service_category"`
	Description     string   `json:"description"`
	PriceSmall      *float64 `json:"price_small"`
	PriceMedium     *float64 `json:"price_medium"`
	PriceLarge      *float64 `json:"price_large"`
	PriceFlat       *float64 `json:"price_flat"`
	IsPerDay        bool     `json:"is_per_day"`
}

type UpdateAddonRequest struct {
	ServiceName     *string  `json:"service_name"`
	ServiceCategory *string  `json:"service_category"`
	Description     *string  `json:"description"`
	PriceSmall      *float64 `json:"price_small"`
	PriceMedium     *float64 `json:"price_medium"`
	PriceLarge      *float64 `json:"price_large"`
	PriceFlat       *float64 `json:"price_flat"`
	IsPerDay        *bool    `json:"is_per_day"`
	Active          *bool    `json:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateAddonRequest) (AddonService, error)
	List(ctx context.Context) ([]AddonService, error)
	GetByID(ctx context.Context, id string) (AddonService, error)
	Update(ctx context.Context, id string, req UpdateAddonRequest) (AddonService, error)
	Delete(ctx context.Context, id string) error
}
