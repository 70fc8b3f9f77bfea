package domain

import (
	"context"
	"errors"
	"time"

	"github.com/pawhaus/boarding/pkg/db/pagination"
)

type CreateDogRequest struct {
	OwnerID        string     `json:"owner_id"`
	Name           string     `json:"name"`
	Breed          string     `json:"breed"`
	HeightCm       *float64   `json:"height_cm"`
	VaccinationDHP *time.Time `json:"vaccination_dhp"`
	VaccinationPI  *time.Time `json:"vaccination_pi"`
}

type UpdateDogRequest struct {
	Name           *string    `json:"name"`
	Breed          *string    `json:"breed"`
	HeightCm       *float64   `json:"height_cm"`
	VaccinationDHP *time.Time `json:"vaccination_dhp"`
	VaccinationPI  *time.Time `json:"vaccination_pi"`
	Active         *bool      `json:"active"`
}

type ListDogsRequest struct {
	PageToken string
	PageSize  int
}

type ListDogsResponse struct {
	pagination.PageInfo
	Dogs []Dog `json:"dogs"`
}

type Service interface {
	Create(ctx context.Context, req CreateDogRequest) (Dog, error)
	List(ctx context.Context, req ListDogsRequest) (ListDogsResponse, error)
	GetByID(ctx context.Context, id string) (Dog, error)
	Update(ctx context.Context, id string, req UpdateDogRequest) (Dog, error)
	Vaccinations(ctx context.Context, id string) (VaccinationReport, error)
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidOwner        = errors.New("invalid_owner")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
