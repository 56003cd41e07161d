// services/schedule_builder.go
package services

import (
	"fmt"
	"sort"
	"time"

	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/google/uuid"
)

// Clock abstracts "now" so past-date validation can be tested with a fixed time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}

// HolidayLookup resolves a holiday calendar id into its set of calendar-date keys
// (utils.DateKey format). An unknown or empty calendar yields an empty set.
type HolidayLookup interface {
	GetHolidayDates(calendarID uuid.UUID) (map[string]struct{}, error)
}

// ScheduleDayInput is a caller-supplied day for the explicit-days escape hatch
// (an external day-planning UI computes its own calendar)
type ScheduleDayInput struct {
	Date        string `json:"date" binding:"required"`
	DayType     string `json:"dayType" binding:"required,oneof=internalCleaningDay externalCleaningDay holiday"`
	IsCompleted bool   `json:"isCompleted"`
	Notes       string `json:"notes"`
}

// ScheduleInput defines the expected JSON structure for creating a schedule
type ScheduleInput struct {
	StartDate     string             `json:"startDate" binding:"required"`
	EndDate       string             `json:"endDate" binding:"required"`
	CityHolidayID *uuid.UUID         `json:"cityHolidayId"`
	CarID         uuid.UUID          `json:"carId" binding:"required"`
	PackageID     uuid.UUID          `json:"packageId" binding:"required"`
	CustomerID    uuid.UUID          `json:"customerId" binding:"required"`
	CleanerID     *uuid.UUID         `json:"cleanerId"`
	ScheduleDays  []ScheduleDayInput `json:"scheduleDays"`
}

// ScheduleUpdateInput defines the expected JSON structure for updating a schedule.
// A nil pointer leaves the field untouched. CityHolidayID set to the nil UUID
// detaches the calendar.
type ScheduleUpdateInput struct {
	StartDate     *string             `json:"startDate"`
	EndDate       *string             `json:"endDate"`
	CityHolidayID *uuid.UUID          `json:"cityHolidayId"`
	CleanerID     *uuid.UUID          `json:"cleanerId"`
	IsActive      *bool               `json:"isActive"`
	ScheduleDays  *[]ScheduleDayInput `json:"scheduleDays"`
}

// ScheduleBuilder assembles and revalidates Schedule aggregates. It owns date
// normalization, range/past-date validation and deciding when the day list must
// be regenerated. Persistence stays with the caller: a build that fails leaves
// nothing to save.
type ScheduleBuilder struct {
	holidays HolidayLookup
	clock    Clock
}

func NewScheduleBuilder(holidays HolidayLookup, clock Clock) *ScheduleBuilder {
	if clock == nil {
		clock = SystemClock
	}
	return &ScheduleBuilder{holidays: holidays, clock: clock}
}

// Build assembles a new Schedule from caller input. The code is NOT assigned
// here — the persistence layer's counter hands it out at save time.
func (b *ScheduleBuilder) Build(input ScheduleInput, createdBy uuid.UUID) (*models.Schedule, error) {
	start, err := utils.ParseDateUTC(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	end, err := utils.ParseDateUTC(input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}
	// "today" is evaluated once, in the business timezone, not server-local
	if start.Before(utils.BusinessToday(b.clock.Now())) {
		return nil, ErrStartDateInPast
	}

	schedule := &models.Schedule{
		StartDate:     start,
		EndDate:       end,
		CityHolidayID: normalizeCalendarID(input.CityHolidayID),
		CarID:         input.CarID,
		PackageID:     input.PackageID,
		CustomerID:    input.CustomerID,
		CleanerID:     input.CleanerID,
		CreatedByID:   createdBy,
		UpdatedByID:   createdBy,
		IsActive:      true,
	}

	if len(input.ScheduleDays) > 0 {
		days, working, err := buildExplicitDays(start, end, input.ScheduleDays)
		if err != nil {
			return nil, err
		}
		schedule.ScheduleDays = days
		schedule.WorkingDays = working
	} else {
		holidays, err := b.lookupHolidays(schedule.CityHolidayID)
		if err != nil {
			return nil, err
		}
		days, working, err := GenerateScheduleDays(start, end, holidays)
		if err != nil {
			return nil, err
		}
		schedule.ScheduleDays = days
		schedule.WorkingDays = working
	}

	return schedule, nil
}

// Rebuild applies an update to an existing schedule in place. Days are
// regenerated only when the date range or the holiday calendar actually changed
// and the caller supplied no explicit day list; otherwise the stored days stay
// untouched. Returns whether the day list was replaced.
func (b *ScheduleBuilder) Rebuild(existing *models.Schedule, input ScheduleUpdateInput, updatedBy uuid.UUID) (bool, error) {
	newStart := existing.StartDate
	newEnd := existing.EndDate
	startChanged := false

	if input.StartDate != nil {
		parsed, err := utils.ParseDateUTC(*input.StartDate)
		if err != nil {
			return false, fmt.Errorf("startDate: %w", err)
		}
		if !parsed.Equal(newStart) {
			newStart = parsed
			startChanged = true
		}
	}
	if input.EndDate != nil {
		parsed, err := utils.ParseDateUTC(*input.EndDate)
		if err != nil {
			return false, fmt.Errorf("endDate: %w", err)
		}
		newEnd = parsed
	}

	if !newEnd.After(newStart) {
		return false, ErrInvalidDateRange
	}
	// only a moved start date has to be in the future; running engagements
	// started in the past and must stay editable
	if startChanged && newStart.Before(utils.BusinessToday(b.clock.Now())) {
		return false, ErrStartDateInPast
	}

	newCalendar := existing.CityHolidayID
	if input.CityHolidayID != nil {
		newCalendar = normalizeCalendarID(input.CityHolidayID)
	}

	dirty := !newStart.Equal(existing.StartDate) ||
		!newEnd.Equal(existing.EndDate) ||
		!sameCalendar(existing.CityHolidayID, newCalendar)

	existing.StartDate = newStart
	existing.EndDate = newEnd
	existing.CityHolidayID = newCalendar
	existing.UpdatedByID = updatedBy

	if input.CleanerID != nil {
		existing.CleanerID = input.CleanerID
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}

	if input.ScheduleDays != nil {
		days, working, err := buildExplicitDays(newStart, newEnd, *input.ScheduleDays)
		if err != nil {
			return false, err
		}
		existing.ScheduleDays = days
		existing.WorkingDays = working
		return true, nil
	}

	if !dirty {
		return false, nil
	}

	holidays, err := b.lookupHolidays(newCalendar)
	if err != nil {
		return false, err
	}
	days, working, err := GenerateScheduleDays(newStart, newEnd, holidays)
	if err != nil {
		return false, err
	}
	existing.ScheduleDays = days
	existing.WorkingDays = working
	return true, nil
}

func (b *ScheduleBuilder) lookupHolidays(calendarID *uuid.UUID) (map[string]struct{}, error) {
	if calendarID == nil || b.holidays == nil {
		return map[string]struct{}{}, nil
	}
	dates, err := b.holidays.GetHolidayDates(*calendarID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHolidayLookup, err)
	}
	if dates == nil {
		dates = map[string]struct{}{}
	}
	return dates, nil
}

// buildExplicitDays validates a caller-supplied day list: every date must fall
// in (startDate, endDate], no duplicates. Working days are recomputed from the
// list so the stored count never disagrees with it.
func buildExplicitDays(start, end time.Time, inputs []ScheduleDayInput) ([]models.ScheduleDay, int, error) {
	days := make([]models.ScheduleDay, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	workingDays := 0

	for _, in := range inputs {
		date, err := utils.ParseDateUTC(in.Date)
		if err != nil {
			return nil, 0, fmt.Errorf("scheduleDays.date: %w", err)
		}
		if !date.After(start) || date.After(end) {
			return nil, 0, fmt.Errorf("%w: %s", ErrDayOutOfRange, in.Date)
		}
		key := utils.DateKey(date)
		if _, dup := seen[key]; dup {
			return nil, 0, fmt.Errorf("%w: %s", ErrDuplicateDay, in.Date)
		}
		seen[key] = struct{}{}

		day := models.ScheduleDay{
			Date:        date,
			DayType:     in.DayType,
			IsCompleted: in.IsCompleted,
			Notes:       in.Notes,
		}
		if day.IsWorkingDay() {
			workingDays++
		}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	return days, workingDays, nil
}

func normalizeCalendarID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

func sameCalendar(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
