package models

import (
	"cleanride-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleDay.DayType values. The rotation alternates internal/external on working
// days; holiday days are emitted but never cleaned.
const (
	DayTypeInternal = "internalCleaningDay"
	DayTypeExternal = "externalCleaningDay"
	DayTypeHoliday  = "holiday"
)

// Schedule is one cleaning engagement for one car over a date span. StartDate and
// EndDate are stored normalized to midnight UTC; the generated days run from the
// day after StartDate through EndDate inclusive.
type Schedule struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// Sequential number from the counters table, immutable after creation.
	// DisplayCode is the user-facing form (SCHE0001).
	Code        int    `gorm:"uniqueIndex;not null" json:"code"`
	DisplayCode string `gorm:"-" json:"displayCode"`

	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	WorkingDays int       `gorm:"default:0" json:"workingDays"`

	CityHolidayID *uuid.UUID `gorm:"type:uuid;index" json:"cityHolidayId"`

	CarID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"carId"`
	PackageID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"packageId"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	CleanerID  *uuid.UUID `gorm:"type:uuid;index" json:"cleanerId"`

	CreatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"createdById"`
	UpdatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"updatedById"`
	DeletedByID *uuid.UUID `gorm:"type:uuid" json:"deletedById"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	ScheduleDays []ScheduleDay `gorm:"foreignKey:ScheduleID" json:"scheduleDays"`

	Car      Car      `gorm:"foreignKey:CarID" json:"car,omitempty"`
	Package  Package  `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	gorm.Model `json:"-"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (s *Schedule) AfterFind(tx *gorm.DB) (err error) {
	s.DisplayCode = utils.FormatScheduleCode(s.Code)
	return
}

func (s *Schedule) AfterCreate(tx *gorm.DB) (err error) {
	s.DisplayCode = utils.FormatScheduleCode(s.Code)
	return
}

// ScheduleDay is one calendar day within a schedule. Days are hard-deleted and
// recreated as a whole list whenever the schedule is regenerated.
type ScheduleDay struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_schedule_day,priority:1" json:"scheduleId"`

	Date    time.Time `gorm:"not null;uniqueIndex:idx_schedule_day,priority:2" json:"date"`
	DayType string    `gorm:"type:varchar(30);not null" json:"dayType"`

	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
	CompletedByID *uuid.UUID `gorm:"type:uuid" json:"completedById"`
	Notes         string     `json:"notes"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (d *ScheduleDay) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

// IsWorkingDay reports whether the day counts toward WorkingDays
func (d *ScheduleDay) IsWorkingDay() bool {
	return d.DayType != DayTypeHoliday
}
