package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidRoom         = errors.New("invalid_room")
	ErrInvalidDog          = errors.New("invalid_dog")
	ErrInvalidDateRange    = errors.New("invalid_date_range")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrDogNotFound         = errors.New("dog_not_found")
)

type Service interface {
	Check(ctx context.Context, req CheckRequest) (CheckResult, error)
	RoomOccupancy(ctx context.Context, roomID string, date time.Time) (Occupancy, error)
}
