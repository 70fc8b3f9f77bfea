package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Dog struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID          snowflake.ID `gorm:"column:org_id;not null;index" json:"organization_id"`
	OwnerID        snowflake.ID `gorm:"not null;index" json:"owner_id"`
	Name           string       `gorm:"not null" json:"name"`
	Breed          string       `json:"breed,omitempty"`
	HeightCm       *float64     `gorm:"column:height_cm" json:"height_cm,omitempty"`
	VaccinationDHP *time.Time   `gorm:"column:vaccination_dhp" json:"vaccination_dhp,omitempty"`
	VaccinationPI  *time.Time   `gorm:"column:vaccination_pi" json:"vaccination_pi,omitempty"`
	Active         bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Dog) TableName() string { return "dogs" }
