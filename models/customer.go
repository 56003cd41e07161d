package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"createdByUserId"`

	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null;uniqueIndex" json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `gorm:"index" json:"city"`

	Notes     string     `json:"notes"`
	LastVisit *time.Time `json:"lastVisit"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Cars      []Car      `gorm:"foreignKey:CustomerID" json:"-"`
	Schedules []Schedule `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
