package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SpecialDate marks a calendar date (optionally recurring every year)
// that forces holiday pricing and carries its own adjustment.
type SpecialDate struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID           snowflake.ID `gorm:"column:org_id;not null;index" json:"organization_id"`
	DateName        string       `gorm:"not null" json:"date_name"`
	DateValue       time.Time    `gorm:"not null" json:"date_value"`
	PriceMultiplier float64      `gorm:"not null;default:1.0" json:"price_multiplier"`
	PriceAddition   float64      `gorm:"not null;default:0" json:"price_addition"`
	RecurringYearly bool         `gorm:"not null;default:false" json:"recurring_yearly"`
	Active          bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SpecialDate) TableName() string { return "special_dates" }

// Matches reports whether this special date applies to the given calendar
// date: either the exact day, or the same month and day when recurring.
func (d SpecialDate) Matches(date time.Time) bool {
	if d.DateValue.Year() == date.Year() && d.DateValue.Month() == date.Month() && d.DateValue.Day() == date.Day() {
		return true
	}
	return d.RecurringYearly && d.DateValue.Month() == date.Month() && d.DateValue.Day() == date.Day()
}
