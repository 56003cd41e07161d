package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// cache=shared keeps the pool's connections on one in-memory database;
	// the per-test name keeps tests from seeing each other's rows.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Counter{}, &Schedule{}, &ScheduleDay{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestNextSequenceMonotonic(t *testing.T) {
	db := openTestDB(t)

	for want := 1; want <= 5; want++ {
		got, err := NextSequence(db, SequenceSchedule)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextSequenceIndependentNames(t *testing.T) {
	db := openTestDB(t)

	a, err := NextSequence(db, "invoices")
	require.NoError(t, err)
	b, err := NextSequence(db, "invoices")
	require.NoError(t, err)
	c, err := NextSequence(db, SequenceSchedule)
	require.NoError(t, err)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, c)
}
