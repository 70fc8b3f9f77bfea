package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type BookingStatus string

var (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Booking is one dog's stay in one room. The price breakdown computed
// at booking time is kept verbatim for auditing.
type Booking struct {
	ID             snowflake.ID   `gorm:"primaryKey" json:"id"`
	OrgID          snowflake.ID   `gorm:"column:org_id;not null;index" json:"organization_id"`
	DogID          snowflake.ID   `gorm:"not null;index" json:"dog_id"`
	RoomID         snowflake.ID   `gorm:"not null;index" json:"room_id"`
	StartDate      time.Time      `gorm:"not null" json:"start_date"`
	EndDate        time.Time      `gorm:"not null" json:"end_date"`
	Status         BookingStatus  `gorm:"type:text;not null;default:pending" json:"status"`
	TotalPrice     float64        `gorm:"not null;default:0" json:"total_price"`
	PriceBreakdown datatypes.JSON `json:"price_breakdown,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
