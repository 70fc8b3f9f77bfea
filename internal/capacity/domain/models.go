package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/config"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
	roomdomain "github.com/pawhaus/boarding/internal/room/domain"
)

// OccupantStay is one confirmed booking overlapping a date range,
// carrying the height of the dog it houses.
type OccupantStay struct {
	BookingID snowflake.ID
	DogID     snowflake.ID
	HeightCm  *float64
	StartDate time.Time
	EndDate   time.Time
}

type CheckRequest struct {
	RoomID           string    `json:"room_id"`
	DogID            string    `json:"dog_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	ExcludeBookingID string    `json:"exclude_booking_id,omitempty"`
}

// CheckResult is an advisory verdict: the caller decides whether to
// honor it.
type CheckResult struct {
	Allowed       bool    `json:"allowed"`
	Message       string  `json:"message"`
	RoomArea      float64 `json:"room_area"`
	UsedArea      float64 `json:"used_area"`
	RequiredArea  float64 `json:"required_area"`
	AvailableArea float64 `json:"available_area"`
	CurrentDogs   int     `json:"current_dogs"`
	MaxDogs       int     `json:"max_dogs"`
}

type ComplianceStatus string

const (
	ComplianceCompliant ComplianceStatus = "compliant"
	ComplianceWarning   ComplianceStatus = "warning"
	ComplianceViolation ComplianceStatus = "violation"
)

// Occupancy reports a room's load on a single date, including the
// group-housing area the current occupants require together.
type Occupancy struct {
	RoomID            snowflake.ID     `json:"room_id,string"`
	Date              time.Time        `json:"date"`
	RoomArea          float64          `json:"room_area"`
	UsedArea          float64          `json:"used_area"`
	GroupRequiredArea float64          `json:"group_required_area"`
	UtilizationPct    int              `json:"utilization_pct"`
	Compliance        ComplianceStatus `json:"compliance_status"`
	Message           string           `json:"message"`
	CurrentDogs       int              `json:"current_dogs"`
	MaxDogs           int              `json:"max_dogs"`
}

// OccupancyCompliance grades a room's group-housing load. Violation
// means the occupants together need more area than the room has,
// warning starts at 85% utilization.
func OccupancyCompliance(roomArea, groupRequired float64) (int, ComplianceStatus, string) {
	pct := 0
	if roomArea > 0 {
		pct = int(math.Round(groupRequired / roomArea * 100))
	}
	switch {
	case groupRequired > roomArea:
		return pct, ComplianceViolation, fmt.Sprintf("overcrowded: group needs %.1f m2, room has %.1f m2", groupRequired, roomArea)
	case pct >= 85:
		return pct, ComplianceWarning, fmt.Sprintf("near capacity at %d%%", pct)
	default:
		return pct, ComplianceCompliant, "meets group housing area requirements"
	}
}

// RoomArea resolves a room's usable floor area, falling back to the
// legacy capacity column and finally to a configured default.
func RoomArea(room roomdomain.Room, defaults config.PricingDefaults) float64 {
	if room.AreaSqm != nil {
		return *room.AreaSqm
	}
	if room.Capacity != nil {
		return float64(*room.Capacity)
	}
	return defaults.FallbackRoomArea
}

// MaxDogs resolves a room's dog limit; rooms without an override are
// effectively unlimited.
func MaxDogs(room roomdomain.Room, defaults config.PricingDefaults) int {
	if room.MaxDogsOverride != nil {
		return *room.MaxDogsOverride
	}
	return defaults.UnlimitedMaxDogs
}

// UsedArea sums the individual area requirement of each occupant.
// Occupants with unknown height are assumed to stand at the configured
// height.
func UsedArea(occupants []OccupantStay, defaults config.PricingDefaults) float64 {
	var used float64
	for _, o := range occupants {
		height := o.HeightCm
		if height == nil {
			assumed := defaults.AssumedDogHeightCm
			height = &assumed
		}
		used += pricingdomain.RequiredArea(height, defaults.FallbackRequiredArea)
	}
	return used
}

// groupSupplement is the extra area each additional dog adds when dogs
// are housed together, banded by that dog's height (SJVFS 2019:2).
func groupSupplement(heightCm float64) float64 {
	switch {
	case heightCm < 25:
		return 1.0
	case heightCm <= 45:
		return 1.5
	case heightCm <= 55:
		return 2.0
	case heightCm <= 65:
		return 2.5
	default:
		return 3.0
	}
}

// GroupRequiredArea is the total area a group of dogs housed together
// needs: the full requirement of the largest dog plus a per-dog
// supplement for every other dog.
func GroupRequiredArea(heights []float64, defaults config.PricingDefaults) float64 {
	if len(heights) == 0 {
		return 0
	}
	largest := 0
	for i, h := range heights {
		if h > heights[largest] {
			largest = i
		}
	}
	total := pricingdomain.RequiredArea(&heights[largest], defaults.FallbackRequiredArea)
	for i, h := range heights {
		if i == largest {
			continue
		}
		total += groupSupplement(h)
	}
	return total
}

// Evaluate renders the advisory verdict for adding one more dog to a
// room already holding the given occupants.
func Evaluate(room roomdomain.Room, occupants []OccupantStay, dogHeightCm *float64, defaults config.PricingDefaults) CheckResult {
	roomArea := RoomArea(room, defaults)
	usedArea := UsedArea(occupants, defaults)
	required := pricingdomain.RequiredArea(dogHeightCm, defaults.FallbackRequiredArea)
	maxDogs := MaxDogs(room, defaults)

	result := CheckResult{
		RoomArea:      roomArea,
		UsedArea:      usedArea,
		RequiredArea:  required,
		AvailableArea: roomArea - usedArea,
		CurrentDogs:   len(occupants),
		MaxDogs:       maxDogs,
	}

	switch {
	case required > result.AvailableArea:
		result.Message = fmt.Sprintf("room lacks space: needed %.1f m2, available %.1f m2", required, result.AvailableArea)
	case len(occupants)+1 > maxDogs:
		result.Message = fmt.Sprintf("room is full: %d of %d dogs", len(occupants), maxDogs)
	default:
		result.Allowed = true
		result.Message = fmt.Sprintf("room has space: %.1f m2 remaining", result.AvailableArea-required)
	}

	return result
}
