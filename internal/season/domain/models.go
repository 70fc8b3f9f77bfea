package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type SeasonType string

var (
	SeasonHigh   SeasonType = "high"
	SeasonLow    SeasonType = "low"
	SeasonNormal SeasonType = "normal"
)

// PricingSeason adjusts nightly prices inside a date range, first
// multiplicatively and then additively.
type PricingSeason struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID           snowflake.ID `gorm:"column:org_id;not null;index" json:"organization_id"`
	SeasonName      string       `gorm:"not null" json:"season_name"`
	SeasonType      SeasonType   `gorm:"type:text;not null;default:normal" json:"season_type"`
	StartDate       time.Time    `gorm:"not null" json:"start_date"`
	EndDate         time.Time    `gorm:"not null" json:"end_date"`
	PriceMultiplier float64      `gorm:"not null;default:1.0" json:"price_multiplier"`
	PriceAddition   float64      `gorm:"not null;default:0" json:"price_addition"`
	Active          bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PricingSeason) TableName() string { return "pricing_seasons" }

// Contains reports whether the season covers the given calendar date,
// bounds inclusive.
func (s PricingSeason) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

// Length is the number of covered days, bounds inclusive.
func (s PricingSeason) Length() int {
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}
