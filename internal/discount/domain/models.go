package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CustomerDiscount is granted to an owner and applied to stays that
// fall inside its validity window. Percentage and fixed-amount
// discounts stack additively when several are in effect.
type CustomerDiscount struct {
	ID                 snowflake.ID `json:"id,string" gorm:"primaryKey"`
	OrgID              snowflake.ID `json:"org_id,string" gorm:"index"`
	OwnerID            snowflake.ID `json:"owner_id,string" gorm:"index"`
	DiscountType       string       `json:"discount_type"`
	DiscountName       string       `json:"discount_name"`
	DiscountPercentage *float64     `json:"discount_percentage,omitempty"`
	DiscountAmount     *float64     `json:"discount_amount,omitempty"`
	ValidFrom          *time.Time   `json:"valid_from,omitempty"`
	ValidUntil         *time.Time   `json:"valid_until,omitempty"`
	MinNights          *int         `json:"min_nights,omitempty"`
	Active             bool         `json:"active"`
	CreatedAt          time.Time    `json:"created_at"`
}

func (CustomerDiscount) TableName() string { return "customer_discounts" }

// AppliesTo reports whether the discount is in effect at now for a
// stay spanning nights nights. The validity window is judged at
// booking time, not against the stay dates. Nil bounds leave the
// window open on that side.
func (d CustomerDiscount) AppliesTo(now time.Time, nights int) bool {
	if !d.Active {
		return false
	}
	if d.ValidFrom != nil && now.Before(*d.ValidFrom) {
		return false
	}
	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return false
	}
	if d.MinNights != nil && nights < *d.MinNights {
		return false
	}
	return true
}
