package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarCategory is the vehicle size class (hatchback, sedan, SUV, ...) used for pricing
type CarCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`

	// Multiplier applied on top of the package base price
	PriceMultiplier float64 `gorm:"type:decimal(4,2);default:1.0" json:"priceMultiplier"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Cars []Car `gorm:"foreignKey:CategoryID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *CarCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
