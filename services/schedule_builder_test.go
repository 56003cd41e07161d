package services

import (
	"errors"
	"testing"
	"time"

	"cleanride-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type stubHolidayLookup struct {
	dates map[string]struct{}
	err   error
	calls int
}

func (s *stubHolidayLookup) GetHolidayDates(calendarID uuid.UUID) (map[string]struct{}, error) {
	s.calls++
	return s.dates, s.err
}

// noon UTC on 2024-03-01; business-timezone "today" is also 2024-03-01
var testClock = fixedClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

func validInput() ScheduleInput {
	return ScheduleInput{
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-15",
		CarID:      uuid.New(),
		PackageID:  uuid.New(),
		CustomerID: uuid.New(),
	}
}

func TestBuild_GeneratesDays(t *testing.T) {
	builder := NewScheduleBuilder(&stubHolidayLookup{}, testClock)
	createdBy := uuid.New()

	schedule, err := builder.Build(validInput(), createdBy)
	assert.NoError(t, err)

	assert.Equal(t, date(2024, 3, 10), schedule.StartDate)
	assert.Equal(t, date(2024, 3, 15), schedule.EndDate)
	assert.Len(t, schedule.ScheduleDays, 5)
	assert.Equal(t, 5, schedule.WorkingDays)
	assert.Equal(t, createdBy, schedule.CreatedByID)
	assert.Equal(t, createdBy, schedule.UpdatedByID)
	assert.True(t, schedule.IsActive)
	assert.Zero(t, schedule.Code) // assigned by the store, not the builder
}

func TestBuild_UsesHolidayCalendar(t *testing.T) {
	lookup := &stubHolidayLookup{dates: holidaySet(date(2024, 3, 13))}
	builder := NewScheduleBuilder(lookup, testClock)

	input := validInput()
	calendarID := uuid.New()
	input.CityHolidayID = &calendarID

	schedule, err := builder.Build(input, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, 1, lookup.calls)
	assert.Equal(t, 4, schedule.WorkingDays)
	assert.Equal(t, models.DayTypeHoliday, schedule.ScheduleDays[2].DayType)
}

func TestBuild_NoCalendarSkipsLookup(t *testing.T) {
	lookup := &stubHolidayLookup{dates: holidaySet(date(2024, 3, 13))}
	builder := NewScheduleBuilder(lookup, testClock)

	schedule, err := builder.Build(validInput(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, 0, lookup.calls)
	assert.Equal(t, 5, schedule.WorkingDays)
}

func TestBuild_InvalidRange(t *testing.T) {
	builder := NewScheduleBuilder(nil, testClock)

	input := validInput()
	input.EndDate = input.StartDate
	_, err := builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	input.EndDate = "2024-03-05"
	_, err = builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBuild_PastStartDate(t *testing.T) {
	builder := NewScheduleBuilder(nil, testClock)

	input := validInput()
	input.StartDate = "2024-02-29" // yesterday relative to the fixed clock
	input.EndDate = "2024-03-15"
	_, err := builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrStartDateInPast)

	// today itself is fine
	input.StartDate = "2024-03-01"
	_, err = builder.Build(input, uuid.New())
	assert.NoError(t, err)
}

func TestBuild_TodayEvaluatedInBusinessTimezone(t *testing.T) {
	// 20:30 UTC is already past midnight in IST — 2024-03-10 is then in the past
	// even though the server-side UTC date still reads 2024-03-10
	lateClock := fixedClock{now: time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)}
	builder := NewScheduleBuilder(nil, lateClock)

	input := validInput()
	_, err := builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrStartDateInPast)

	input.StartDate = "2024-03-11"
	_, err = builder.Build(input, uuid.New())
	assert.NoError(t, err)
}

func TestBuild_HolidayLookupFailurePropagates(t *testing.T) {
	lookup := &stubHolidayLookup{err: errors.New("redis down")}
	builder := NewScheduleBuilder(lookup, testClock)

	input := validInput()
	calendarID := uuid.New()
	input.CityHolidayID = &calendarID

	_, err := builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrHolidayLookup)
}

func TestBuild_ExplicitDaysBypassGeneration(t *testing.T) {
	lookup := &stubHolidayLookup{}
	builder := NewScheduleBuilder(lookup, testClock)

	input := validInput()
	input.ScheduleDays = []ScheduleDayInput{
		{Date: "2024-03-14", DayType: models.DayTypeExternal},
		{Date: "2024-03-11", DayType: models.DayTypeInternal, Notes: "deep clean"},
		{Date: "2024-03-12", DayType: models.DayTypeHoliday},
	}

	schedule, err := builder.Build(input, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, 0, lookup.calls)

	// sorted chronologically, working days recomputed from the list
	assert.Len(t, schedule.ScheduleDays, 3)
	assert.Equal(t, date(2024, 3, 11), schedule.ScheduleDays[0].Date)
	assert.Equal(t, "deep clean", schedule.ScheduleDays[0].Notes)
	assert.Equal(t, date(2024, 3, 14), schedule.ScheduleDays[2].Date)
	assert.Equal(t, 2, schedule.WorkingDays)
}

func TestBuild_ExplicitDaysValidated(t *testing.T) {
	builder := NewScheduleBuilder(nil, testClock)

	// the start date itself is outside the sequence
	input := validInput()
	input.ScheduleDays = []ScheduleDayInput{{Date: "2024-03-10", DayType: models.DayTypeInternal}}
	_, err := builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrDayOutOfRange)

	input = validInput()
	input.ScheduleDays = []ScheduleDayInput{{Date: "2024-03-16", DayType: models.DayTypeInternal}}
	_, err = builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrDayOutOfRange)

	input = validInput()
	input.ScheduleDays = []ScheduleDayInput{
		{Date: "2024-03-11", DayType: models.DayTypeInternal},
		{Date: "2024-03-11", DayType: models.DayTypeExternal},
	}
	_, err = builder.Build(input, uuid.New())
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func existingSchedule(t *testing.T, builder *ScheduleBuilder) *models.Schedule {
	t.Helper()
	schedule, err := builder.Build(validInput(), uuid.New())
	assert.NoError(t, err)
	schedule.ID = uuid.New()
	return schedule
}

func TestRebuild_NoChangesKeepsDays(t *testing.T) {
	lookup := &stubHolidayLookup{}
	builder := NewScheduleBuilder(lookup, testClock)
	schedule := existingSchedule(t, builder)
	originalDays := schedule.ScheduleDays

	updatedBy := uuid.New()
	sameStart := "2024-03-10"
	regenerated, err := builder.Rebuild(schedule, ScheduleUpdateInput{StartDate: &sameStart}, updatedBy)
	assert.NoError(t, err)
	assert.False(t, regenerated)
	assert.Equal(t, originalDays, schedule.ScheduleDays)
	assert.Equal(t, updatedBy, schedule.UpdatedByID)
}

func TestRebuild_DateChangeRegenerates(t *testing.T) {
	builder := NewScheduleBuilder(&stubHolidayLookup{}, testClock)
	schedule := existingSchedule(t, builder)

	newEnd := "2024-03-20"
	regenerated, err := builder.Rebuild(schedule, ScheduleUpdateInput{EndDate: &newEnd}, uuid.New())
	assert.NoError(t, err)
	assert.True(t, regenerated)
	assert.Len(t, schedule.ScheduleDays, 10)
	assert.Equal(t, 10, schedule.WorkingDays)
}

func TestRebuild_CalendarChangeRegenerates(t *testing.T) {
	lookup := &stubHolidayLookup{dates: holidaySet(date(2024, 3, 12))}
	builder := NewScheduleBuilder(lookup, testClock)
	schedule := existingSchedule(t, builder)

	calendarID := uuid.New()
	regenerated, err := builder.Rebuild(schedule, ScheduleUpdateInput{CityHolidayID: &calendarID}, uuid.New())
	assert.NoError(t, err)
	assert.True(t, regenerated)
	assert.Equal(t, 4, schedule.WorkingDays)

	// setting the same calendar again is not a change
	regenerated, err = builder.Rebuild(schedule, ScheduleUpdateInput{CityHolidayID: &calendarID}, uuid.New())
	assert.NoError(t, err)
	assert.False(t, regenerated)

	// the nil UUID detaches the calendar and regenerates without holidays
	nilID := uuid.Nil
	regenerated, err = builder.Rebuild(schedule, ScheduleUpdateInput{CityHolidayID: &nilID}, uuid.New())
	assert.NoError(t, err)
	assert.True(t, regenerated)
	assert.Nil(t, schedule.CityHolidayID)
	assert.Equal(t, 5, schedule.WorkingDays)
}

func TestRebuild_ExplicitDaysWinOverRegeneration(t *testing.T) {
	lookup := &stubHolidayLookup{}
	builder := NewScheduleBuilder(lookup, testClock)
	schedule := existingSchedule(t, builder)

	newEnd := "2024-03-20"
	days := []ScheduleDayInput{{Date: "2024-03-18", DayType: models.DayTypeExternal}}
	regenerated, err := builder.Rebuild(schedule,
		ScheduleUpdateInput{EndDate: &newEnd, ScheduleDays: &days}, uuid.New())
	assert.NoError(t, err)
	assert.True(t, regenerated)
	assert.Equal(t, 0, lookup.calls)
	assert.Len(t, schedule.ScheduleDays, 1)
	assert.Equal(t, 1, schedule.WorkingDays)
}

func TestRebuild_UnchangedPastStartStaysEditable(t *testing.T) {
	// engagement started before "today"; touching other fields must not trip
	// the past-date check
	builder := NewScheduleBuilder(&stubHolidayLookup{}, testClock)
	schedule := existingSchedule(t, builder)
	schedule.StartDate = date(2024, 2, 1)
	schedule.EndDate = date(2024, 3, 15)

	cleanerID := uuid.New()
	regenerated, err := builder.Rebuild(schedule, ScheduleUpdateInput{CleanerID: &cleanerID}, uuid.New())
	assert.NoError(t, err)
	assert.False(t, regenerated)
	assert.Equal(t, &cleanerID, schedule.CleanerID)

	// but moving the start into the past is still rejected
	pastStart := "2024-02-20"
	_, err = builder.Rebuild(schedule, ScheduleUpdateInput{StartDate: &pastStart}, uuid.New())
	assert.ErrorIs(t, err, ErrStartDateInPast)
}

func TestRebuild_InvalidRangeRejected(t *testing.T) {
	builder := NewScheduleBuilder(&stubHolidayLookup{}, testClock)
	schedule := existingSchedule(t, builder)

	badEnd := "2024-03-10"
	_, err := builder.Rebuild(schedule, ScheduleUpdateInput{EndDate: &badEnd}, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
