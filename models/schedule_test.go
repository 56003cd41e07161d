package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule(code int) *Schedule {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return &Schedule{
		Code:        code,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 5),
		WorkingDays: 5,
		CarID:       uuid.New(),
		PackageID:   uuid.New(),
		CustomerID:  uuid.New(),
		CreatedByID: uuid.New(),
		UpdatedByID: uuid.New(),
		IsActive:    true,
	}
}

func TestScheduleDisplayCode(t *testing.T) {
	db := openTestDB(t)

	schedule := testSchedule(7)
	require.NoError(t, db.Create(schedule).Error)

	assert.NotEqual(t, uuid.Nil, schedule.ID)
	assert.Equal(t, "SCHE0007", schedule.DisplayCode)

	var loaded Schedule
	require.NoError(t, db.First(&loaded, "id = ?", schedule.ID).Error)
	assert.Equal(t, 7, loaded.Code)
	assert.Equal(t, "SCHE0007", loaded.DisplayCode)
}

func TestScheduleDayDefaults(t *testing.T) {
	db := openTestDB(t)

	schedule := testSchedule(1)
	require.NoError(t, db.Create(schedule).Error)

	day := &ScheduleDay{
		ScheduleID: schedule.ID,
		Date:       schedule.StartDate.AddDate(0, 0, 1),
		DayType:    DayTypeInternal,
	}
	require.NoError(t, db.Create(day).Error)

	assert.NotEqual(t, uuid.Nil, day.ID)
	assert.False(t, day.IsCompleted)
	assert.True(t, day.IsWorkingDay())

	holiday := &ScheduleDay{
		ScheduleID: schedule.ID,
		Date:       schedule.StartDate.AddDate(0, 0, 2),
		DayType:    DayTypeHoliday,
	}
	require.NoError(t, db.Create(holiday).Error)
	assert.False(t, holiday.IsWorkingDay())

	// the (schedule, date) pair is unique
	dup := &ScheduleDay{
		ScheduleID: schedule.ID,
		Date:       day.Date,
		DayType:    DayTypeExternal,
	}
	assert.Error(t, db.Create(dup).Error)
}
