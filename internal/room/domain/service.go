package domain

import (
	"context"
	"errors"
)

type CreateRoomRequest struct {
	RoomNumber      string   `json:"room_number"`
	RoomType        RoomType `json:"room_type"`
	Capacity        *int     `json:"capacity"`
	AreaSqm         *float64 `json:"area_sqm"`
	MaxDogsOverride *int     `json:"max_dogs_override"`
}

type UpdateRoomRequest struct {
	RoomNumber      *string   `json:"room_number"`
	RoomType        *RoomType `json:"room_type"`
	Capacity        *int      `json:"capacity"`
	AreaSqm         *float64  `json:"area_sqm"`
	MaxDogsOverride *int      `json:"max_dogs_override"`
	Active          *bool     `json:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateRoomRequest) (Room, error)
	List(ctx context.Context) ([]Room, error)
	GetByID(ctx context.Context, id string) (Room, error)
	Update(ctx context.Context, id string, req UpdateRoomRequest) (Room, error)
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidRoomNumber   = errors.New("invalid_room_number")
	ErrDuplicateRoomNumber = errors.New("duplicate_room_number")
	ErrInvalidRoomType     = errors.New("invalid_room_type")
	ErrInvalidArea         = errors.New("invalid_area")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
