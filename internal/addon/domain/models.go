package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AddonService is an extra service bookable alongside a stay, priced
// either per dog size or with a single flat price.
type AddonService struct {
	ID              snowflake.ID `json:"id,string" gorm:"primaryKey"`
	OrgID           snowflake.ID `json:"org_id,string" gorm:"index"`
	ServiceName     string       `json:"service_name"`
	ServiceCategory string       `json:"service_category"`
	Description     string       `json:"description,omitempty"`
	PriceSmall      *float64     `json:"price_small,omitempty"`
	PriceMedium     *float64     `json:"price_medium,omitempty"`
	PriceLarge      *float64     `json:"price_large,omitempty"`
	PriceFlat       *float64     `json:"price_flat,omitempty"`
	IsPerDay        bool         `json:"is_per_day"`
	Active          bool         `json:"active"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (AddonService) TableName() string { return "addon_services" }
