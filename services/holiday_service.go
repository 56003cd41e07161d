// services/holiday_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var holidayCtx = context.Background()

const holidayCacheTTL = 10 * time.Minute

// HolidayService is the db-backed HolidayLookup with an optional Redis cache in
// front. cache may be nil, queries then always hit the database.
type HolidayService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewHolidayService(db *gorm.DB, cache *redis.Client) *HolidayService {
	return &HolidayService{db: db, cache: cache}
}

// GetHolidayDates returns the set of calendar-date keys for one calendar.
// A calendar with no entries (or an id that matches nothing) is an empty set,
// not an error.
func (s *HolidayService) GetHolidayDates(calendarID uuid.UUID) (map[string]struct{}, error) {
	cacheKey := "holidays_" + calendarID.String()

	if s.cache != nil {
		if cached, err := s.cache.Get(holidayCtx, cacheKey).Result(); err == nil && cached != "" {
			var keys []string
			if err := json.Unmarshal([]byte(cached), &keys); err == nil {
				return toDateSet(keys), nil
			}
		}
	}

	var dates []models.HolidayDate
	if err := s.db.Where("city_holiday_id = ?", calendarID).Find(&dates).Error; err != nil {
		return nil, fmt.Errorf("fetch holiday dates: %w", err)
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, utils.DateKey(d.Date))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(keys); err == nil {
			s.cache.Set(holidayCtx, cacheKey, payload, holidayCacheTTL)
		}
	}

	return toDateSet(keys), nil
}

// InvalidateCache drops the cached date set after a calendar edit
func (s *HolidayService) InvalidateCache(calendarID uuid.UUID) {
	if s.cache != nil {
		s.cache.Del(holidayCtx, "holidays_"+calendarID.String())
	}
}

func toDateSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
