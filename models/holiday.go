package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CityHoliday is a named holiday calendar, one per city/society. Schedules reference
// it so generated cleaning days can skip the holidays it lists.
type CityHoliday struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	City string    `gorm:"uniqueIndex;not null" json:"city"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Dates []HolidayDate `gorm:"foreignKey:CityHolidayID" json:"dates"`

	gorm.Model `json:"-"`
}

func (h *CityHoliday) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}

// HolidayDate is a single calendar date within a CityHoliday calendar.
// Date is stored normalized to midnight UTC.
type HolidayDate struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CityHolidayID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_calendar_date,priority:1" json:"cityHolidayId"`

	Date time.Time `gorm:"not null;uniqueIndex:idx_calendar_date,priority:2" json:"date"`
	Name string    `json:"name"`

	gorm.Model `json:"-"`
}

func (h *HolidayDate) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}
