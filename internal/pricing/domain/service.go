package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidDog          = errors.New("invalid_dog")
	ErrInvalidDateRange    = errors.New("invalid_date_range")
	ErrDogNotFound         = errors.New("dog_not_found")
)

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (PriceBreakdown, error)
}
