package services

import (
	"testing"
	"time"

	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func holidaySet(dates ...time.Time) map[string]struct{} {
	set := make(map[string]struct{})
	for _, d := range dates {
		set[utils.DateKey(d)] = struct{}{}
	}
	return set
}

func dayTypes(days []models.ScheduleDay) []string {
	types := make([]string, len(days))
	for i, d := range days {
		types[i] = d.DayType
	}
	return types
}

func TestGenerateScheduleDays_NoHolidays(t *testing.T) {
	days, working, err := GenerateScheduleDays(date(2024, 3, 10), date(2024, 3, 15), nil)
	assert.NoError(t, err)
	assert.Len(t, days, 5)
	assert.Equal(t, 5, working)

	// first day is the day after the start date
	assert.Equal(t, date(2024, 3, 11), days[0].Date)
	assert.Equal(t, date(2024, 3, 15), days[4].Date)

	assert.Equal(t, []string{
		models.DayTypeInternal,
		models.DayTypeExternal,
		models.DayTypeInternal,
		models.DayTypeExternal,
		models.DayTypeInternal,
	}, dayTypes(days))

	for _, d := range days {
		assert.False(t, d.IsCompleted)
		assert.Empty(t, d.Notes)
	}
}

func TestGenerateScheduleDays_HolidayIsTransparentToRotation(t *testing.T) {
	holidays := holidaySet(date(2024, 3, 13))

	days, working, err := GenerateScheduleDays(date(2024, 3, 10), date(2024, 3, 15), holidays)
	assert.NoError(t, err)
	assert.Len(t, days, 5)
	assert.Equal(t, 4, working)

	// the day after the holiday resumes the pending alternation
	assert.Equal(t, []string{
		models.DayTypeInternal,
		models.DayTypeExternal,
		models.DayTypeHoliday,
		models.DayTypeInternal,
		models.DayTypeExternal,
	}, dayTypes(days))
}

func TestGenerateScheduleDays_SameDayRangeRejected(t *testing.T) {
	_, _, err := GenerateScheduleDays(date(2024, 3, 10), date(2024, 3, 10), nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = GenerateScheduleDays(date(2024, 3, 15), date(2024, 3, 10), nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGenerateScheduleDays_TimeOfDayIgnored(t *testing.T) {
	// same calendar days constructed with different clock readings
	start := time.Date(2024, 3, 10, 23, 50, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 10, 0, 0, time.UTC)

	days, working, err := GenerateScheduleDays(start, end, nil)
	assert.NoError(t, err)
	assert.Len(t, days, 5)
	assert.Equal(t, 5, working)
	assert.Equal(t, date(2024, 3, 11), days[0].Date)

	// end on or before start by calendar date fails even when the timestamps differ
	_, _, err = GenerateScheduleDays(
		time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC),
		nil,
	)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGenerateScheduleDays_Idempotent(t *testing.T) {
	holidays := holidaySet(date(2024, 6, 3), date(2024, 6, 7))

	first, firstWorking, err := GenerateScheduleDays(date(2024, 6, 1), date(2024, 6, 10), holidays)
	assert.NoError(t, err)
	second, secondWorking, err := GenerateScheduleDays(date(2024, 6, 1), date(2024, 6, 10), holidays)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstWorking, secondWorking)
}

func TestGenerateScheduleDays_Properties(t *testing.T) {
	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		holidays map[string]struct{}
	}{
		{"one day", date(2024, 1, 1), date(2024, 1, 2), nil},
		{"full month", date(2024, 2, 1), date(2024, 2, 29), holidaySet(date(2024, 2, 10), date(2024, 2, 11))},
		{"holiday on first day", date(2024, 4, 1), date(2024, 4, 5), holidaySet(date(2024, 4, 2))},
		{"holiday on last day", date(2024, 4, 1), date(2024, 4, 5), holidaySet(date(2024, 4, 5))},
		{"all holidays", date(2024, 4, 1), date(2024, 4, 4), holidaySet(date(2024, 4, 2), date(2024, 4, 3), date(2024, 4, 4))},
		{"year boundary", date(2023, 12, 30), date(2024, 1, 3), holidaySet(date(2024, 1, 1))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days, working, err := GenerateScheduleDays(tc.start, tc.end, tc.holidays)
			assert.NoError(t, err)

			// one day per calendar day from start+1 through end inclusive
			assert.Len(t, days, utils.DaysBetween(tc.start, tc.end))

			// chronological order, no gaps
			for i, d := range days {
				assert.Equal(t, tc.start.AddDate(0, 0, i+1), d.Date)
			}

			// working days counts exactly the non-holiday days, and the
			// non-holiday subsequence strictly alternates starting internal
			nonHoliday := 0
			expectInternal := true
			for _, d := range days {
				if d.DayType == models.DayTypeHoliday {
					_, isHoliday := tc.holidays[utils.DateKey(d.Date)]
					assert.True(t, isHoliday)
					continue
				}
				nonHoliday++
				if expectInternal {
					assert.Equal(t, models.DayTypeInternal, d.DayType)
				} else {
					assert.Equal(t, models.DayTypeExternal, d.DayType)
				}
				expectInternal = !expectInternal
			}
			assert.Equal(t, nonHoliday, working)
		})
	}
}
