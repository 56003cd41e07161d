package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Package is a cleaning plan the customer subscribes to (price is the base price,
// the car category multiplier is applied at billing time)
type Package struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Days        int       `gorm:"not null" json:"days"` // engagement length in days

	// What the plan covers (e.g. {"interiorPerWeek": 3, "foamWash": true})
	Inclusions JSONB `gorm:"type:jsonb;default:'{}'" json:"inclusions"`

	Category string `gorm:"default:'Standard'" json:"category"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Schedules []Schedule `gorm:"foreignKey:PackageID" json:"-"`

	gorm.Model `json:"-"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
