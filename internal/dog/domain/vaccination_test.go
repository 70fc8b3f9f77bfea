package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEvaluateVaccination_Missing(t *testing.T) {
	status := EvaluateVaccination(nil, DHPValidityYears, ts(2026, 6, 1))
	assert.False(t, status.Valid)
	assert.Equal(t, VaccinationMissing, status.Status)
	assert.Nil(t, status.ValidUntil)
}

func TestEvaluateVaccination_Valid(t *testing.T) {
	given := ts(2025, 6, 1)
	status := EvaluateVaccination(&given, DHPValidityYears, ts(2026, 6, 1))
	assert.True(t, status.Valid)
	assert.Equal(t, VaccinationValid, status.Status)
	assert.Equal(t, ts(2028, 6, 1), *status.ValidUntil)
}

func TestEvaluateVaccination_Expiring(t *testing.T) {
	// PI given just under a year ago: 10 days of cover left.
	given := ts(2025, 6, 11)
	status := EvaluateVaccination(&given, PIValidityYears, ts(2026, 6, 1))
	assert.True(t, status.Valid)
	assert.Equal(t, VaccinationExpiring, status.Status)
	assert.Contains(t, status.Message, "expires in")
}

func TestEvaluateVaccination_Expired(t *testing.T) {
	given := ts(2024, 6, 1)
	status := EvaluateVaccination(&given, PIValidityYears, ts(2026, 6, 1))
	assert.False(t, status.Valid)
	assert.Equal(t, VaccinationExpired, status.Status)
	assert.Contains(t, status.Message, "expired")
}

func TestEvaluateVaccination_BoundaryDay(t *testing.T) {
	// Still covered on the expiry day itself.
	given := ts(2025, 6, 1)
	status := EvaluateVaccination(&given, PIValidityYears, ts(2026, 6, 1))
	assert.True(t, status.Valid)
	assert.Equal(t, VaccinationExpiring, status.Status)
}
