// services/schedule_generator.go
package services

import (
	"errors"
	"time"

	"cleanride-backend/models"
	"cleanride-backend/utils"
)

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrStartDateInPast  = errors.New("start date cannot be in the past")
	ErrHolidayLookup    = errors.New("holiday lookup failed")
	ErrDayOutOfRange    = errors.New("schedule day falls outside the engagement range")
	ErrDuplicateDay     = errors.New("duplicate schedule day date")
)

// GenerateScheduleDays expands a date range into the day-by-day cleaning calendar.
// Days run from the day after startDate through endDate inclusive — the start date
// marks when the engagement begins, the first physical cleaning is the next day.
//
// Non-holiday days alternate internal/external starting with internal. Holidays
// (looked up by calendar-date key) are emitted as holiday days but do not advance
// the rotation or the working-day count: the day after a holiday resumes whatever
// alternation was pending.
//
// The function is pure; identical inputs always produce the identical sequence.
func GenerateScheduleDays(startDate, endDate time.Time, holidays map[string]struct{}) ([]models.ScheduleDay, int, error) {
	start := utils.NormalizeDateUTC(startDate)
	end := utils.NormalizeDateUTC(endDate)

	if !end.After(start) {
		return nil, 0, ErrInvalidDateRange
	}

	var days []models.ScheduleDay
	workingDays := 0
	nextIsInternal := true

	for current := start.AddDate(0, 0, 1); !current.After(end); current = current.AddDate(0, 0, 1) {
		day := models.ScheduleDay{Date: current}

		if _, isHoliday := holidays[utils.DateKey(current)]; isHoliday {
			day.DayType = models.DayTypeHoliday
		} else {
			if nextIsInternal {
				day.DayType = models.DayTypeInternal
			} else {
				day.DayType = models.DayTypeExternal
			}
			nextIsInternal = !nextIsInternal
			workingDays++
		}

		days = append(days, day)
	}

	return days, workingDays, nil
}
