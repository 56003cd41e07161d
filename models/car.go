package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Car struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	BrandID         uuid.UUID `gorm:"type:uuid;index;not null" json:"brandId"`
	CategoryID      uuid.UUID `gorm:"type:uuid;index;not null" json:"categoryId"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"createdByUserId"`

	PlateNumber string `gorm:"uniqueIndex;not null" json:"plateNumber"`
	ModelName   string `gorm:"not null" json:"modelName"`
	Color       string `json:"color"`

	// Where the car is parked overnight (tower, basement, slot number)
	ParkingInfo JSONB `gorm:"type:jsonb;default:'{}'" json:"parkingInfo"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Brand    Brand       `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category CarCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Schedules []Schedule `gorm:"foreignKey:CarID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
