package domain

import (
	"context"
	"errors"
	"time"
)

type CreateSpecialDateRequest struct {
	DateName        string    `json:"date_name"`
	DateValue       time.Time `json:"date_value"`
	PriceMultiplier float64   `json:"price_multiplier"`
	PriceAddition   float64   `json:"price_addition"`
	RecurringYearly bool      `json:"recurring_yearly"`
}

type UpdateSpecialDateRequest struct {
	DateName        *string    `json:"date_name"`
	DateValue       *time.Time `json:"date_value"`
	PriceMultiplier *float64   `json:"price_multiplier"`
	PriceAddition   *float64   `json:"price_addition"`
	RecurringYearly *bool      `json:"recurring_yearly"`
	Active          *bool      `json:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateSpecialDateRequest) (SpecialDate, error)
	List(ctx context.Context) ([]SpecialDate, error)
	Update(ctx context.Context, id string, req UpdateSpecialDateRequest) (SpecialDate, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidDate         = errors.New("invalid_date")
	ErrInvalidMultiplier   = errors.New("invalid_multiplier")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
