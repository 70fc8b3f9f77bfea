package domain

import (
	"fmt"
	"time"
)

// Vaccination validity windows. DHP protects for three years,
// PI (kennel cough) for one.
const (
	DHPValidityYears = 3
	PIValidityYears  = 1
)

const expiryWarningDays = 30

type VaccinationState string

const (
	VaccinationValid    VaccinationState = "valid"
	VaccinationExpiring VaccinationState = "expiring"
	VaccinationExpired  VaccinationState = "expired"
	VaccinationMissing  VaccinationState = "missing"
)

type VaccinationStatus struct {
	Valid      bool             `json:"valid"`
	Status     VaccinationState `json:"status"`
	ValidUntil *time.Time       `json:"valid_until,omitempty"`
	Message    string           `json:"message"`
}

type VaccinationReport struct {
	DogID string            `json:"dog_id"`
	DHP   VaccinationStatus `json:"dhp"`
	PI    VaccinationStatus `json:"pi"`
}

// EvaluateVaccination reports whether a vaccination given on the supplied
// date is still valid at now, expiring within 30 days, expired, or missing.
func EvaluateVaccination(given *time.Time, validityYears int, now time.Time) VaccinationStatus {
	if given == nil {
		return VaccinationStatus{
			Valid:   false,
			Status:  VaccinationMissing,
			Message: "no vaccination on record",
		}
	}

	validUntil := given.AddDate(validityYears, 0, 0)
	daysLeft := int(validUntil.Sub(now).Hours() / 24)

	switch {
	case daysLeft < 0:
		return VaccinationStatus{
			Valid:      false,
			Status:     VaccinationExpired,
			ValidUntil: &validUntil,
			Message:    fmt.Sprintf("expired %s", validUntil.Format("2006-01-02")),
		}
	case daysLeft <= expiryWarningDays:
		return VaccinationStatus{
			Valid:      true,
			Status:     VaccinationExpiring,
			ValidUntil: &validUntil,
			Message:    fmt.Sprintf("expires in %d days", daysLeft),
		}
	default:
		return VaccinationStatus{
			Valid:      true,
			Status:     VaccinationValid,
			ValidUntil: &validUntil,
			Message:    fmt.Sprintf("valid until %s", validUntil.Format("2006-01-02")),
		}
	}
}
