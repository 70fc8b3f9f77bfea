package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidOwner        = errors.New("invalid_owner")
	ErrInvalidName         = errors.New("invalid_discount_name")
	ErrInvalidValue        = errors.New("invalid_discount_value")
	ErrInvalidID           = errors.New("invalid_discount_id")
	ErrNotFound            = errors.New("discount_not_found")
)

type CreateDiscountRequest struct {
	OwnerID            string     `json:"owner_id"`
	DiscountType       string     `json:"discount_type"`
	DiscountName       string     `json:"discount_name"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	DiscountAmount     *float64   `json:"discount_amount"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	MinNights          *int       `json:"min_nights"`
}

type UpdateDiscountRequest struct {
	DiscountType       *string    `json:"discount_type"`
	DiscountName       *string    `json:"discount_name"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	DiscountAmount     *float64   `json:"discount_amount"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	MinNights          *int       `json:"min_nights"`
	Active             *bool      `json:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateDiscountRequest) (CustomerDiscount, error)
	List(ctx context.Context) ([]CustomerDiscount, error)
	ListByOwner(ctx context.Context, ownerID snowflake.ID) ([]CustomerDiscount, error)
	Update(ctx context.Context, id string, req UpdateDiscountRequest) (CustomerDiscount, error)
	Delete(ctx context.Context, id string) error
}
