package domain

import (
	"context"
	"errors"
)

type CreatePriceRequest struct {
	DogSize       DogSize   `json:"dog_size"`
	PriceType     PriceType `json:"price_type"`
	PricePerNight float64   `json:"price_per_night"`
}

type UpdatePriceRequest struct {
	PricePerNight *float64 `json:"price_per_night"`
	Active        *bool    `json:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreatePriceRequest) (BoardingPrice, error)
	List(ctx context.Context) ([]BoardingPrice, error)
	Update(ctx context.Context, id string, req UpdatePriceRequest) (BoardingPrice, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidDogSize      = errors.New("invalid_dog_size")
	ErrInvalidPriceType    = errors.New("invalid_price_type")
	ErrInvalidPrice        = errors.New("invalid_price")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
