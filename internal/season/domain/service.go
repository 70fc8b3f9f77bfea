package domain

import (
	"context"
	"errors"
	"time"
)

type CreateSeasonRequest struct {
	SeasonName      string     `json:"season_name"`
	SeasonType      SeasonType `json:"season_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	PriceMultiplier float64    `json:"price_multiplier"`
	PriceAddition   float64    `json:"price_addition"`
}

type UpdateSeasonRequest struct {
	SeasonName      *string    `json:"season_name"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	PriceMultiplier *float64   `json:"price_multiplier"`
	PriceAddition   *float64   `json:"price_addition"`
	Active          *bool      `json:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateSeasonRequest) (PricingSeason, error)
	List(ctx context.Context) ([]PricingSeason, error)
	Update(ctx context.Context, id string, req UpdateSeasonRequest) (PricingSeason, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidDateRange    = errors.New("invalid_date_range")
	ErrInvalidMultiplier   = errors.New("invalid_multiplier")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
