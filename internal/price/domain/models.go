package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type DogSize string

var (
	SizeSmall  DogSize = "small"
	SizeMedium DogSize = "medium"
	SizeLarge  DogSize = "large"
)

func (s DogSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

type PriceType string

var (
	PriceWeekday PriceType = "weekday"
	PriceWeekend PriceType = "weekend"
	PriceHoliday PriceType = "holiday"
)

func (t PriceType) Valid() bool {
	switch t {
	case PriceWeekday, PriceWeekend, PriceHoliday:
		return true
	}
	return false
}

// BoardingPrice is the nightly base rate for one (size, price type) pair.
type BoardingPrice struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID         snowflake.ID `gorm:"column:org_id;not null;index" json:"organization_id"`
	DogSize       DogSize      `gorm:"type:text;not null" json:"dog_size"`
	PriceType     PriceType    `gorm:"type:text;not null" json:"price_type"`
	PricePerNight float64      `gorm:"not null" json:"price_per_night"`
	Active        bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BoardingPrice) TableName() string { return "boarding_prices" }
