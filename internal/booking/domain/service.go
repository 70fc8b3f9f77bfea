package domain

import (
	"context"
	"errors"
	"time"

	capacitydomain "github.com/pawhaus/boarding/internal/capacity/domain"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
)

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidDog          = errors.New("invalid_dog")
	ErrInvalidRoom         = errors.New("invalid_room")
	ErrInvalidDateRange    = errors.New("invalid_date_range")
	ErrInvalidStatus       = errors.New("invalid_booking_status")
	ErrInvalidID           = errors.New("invalid_booking_id")
	ErrNotFound            = errors.New("booking_not_found")
	ErrRoomFull            = errors.New("room_capacity_exceeded")
)

type CreateBookingRequest struct {
	DogID    string    `json:"dog_id"`
	RoomID   string    `json:"room_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	AddonIDs []string  `json:"addon_ids"`
	Notes    string    `json:"notes"`

	// ForceCapacity books past an advisory capacity refusal.
	ForceCapacity bool `json:"force_capacity"`
}

type UpdateBookingRequest struct {
	Status *BookingStatus `json:"status"`
	Notes  *string        `json:"notes"`
}

// BookingResult pairs the stored booking with the capacity verdict and
// price breakdown produced while creating it.
type BookingResult struct {
	Booking   Booking                      `json:"booking"`
	Capacity  capacitydomain.CheckResult   `json:"capacity"`
	Breakdown pricingdomain.PriceBreakdown `json:"breakdown"`
}

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (BookingResult, error)
	List(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
	Update(ctx context.Context, id string, req UpdateBookingRequest) (Booking, error)
	Cancel(ctx context.Context, id string) (Booking, error)
}
