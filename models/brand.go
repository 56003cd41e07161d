package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"uniqueIndex;not null" json:"name"`
	Country string    `json:"country"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Cars []Car `gorm:"foreignKey:BrandID" json:"-"`

	gorm.Model `json:"-"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
