package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type RoomType string

var (
	RoomTypeStandard RoomType = "standard"
	RoomTypePremium  RoomType = "premium"
	RoomTypeSuite    RoomType = "suite"
)

type Room struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID      snowflake.ID `gorm:"column:org_id;not null;index" json:"organization_id"`
	RoomNumber string       `gorm:"not null" json:"room_number"`
	RoomType   RoomType     `gorm:"type:text;not null;default:standard" json:"room_type"`
	// Capacity is the legacy whole-room size used before area_sqm existed.
	// It still acts as the area fallback for rooms that never got measured.
	Capacity        *int      `json:"capacity,omitempty"`
	AreaSqm         *float64  `gorm:"column:area_sqm" json:"area_sqm,omitempty"`
	MaxDogsOverride *int      `gorm:"column:max_dogs_override" json:"max_dogs_override,omitempty"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
