package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cleaner is the field staff profile. UserID is set when the cleaner has app login access.
type Cleaner struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"userId"`

	Name  string `gorm:"not null" json:"name"`
	Phone string `gorm:"not null;uniqueIndex" json:"phone"`
	Area  string `gorm:"index" json:"area"` // neighbourhood/society the cleaner covers

	IsActive bool `gorm:"default:true" json:"isActive"`

	Schedules []Schedule `gorm:"foreignKey:CleanerID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Cleaner) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
