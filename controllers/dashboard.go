package controllers

import (
	"net/http"
	"time"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers  int64 `json:"totalCustomers"`
	TotalCars       int64 `json:"totalCars"`
	TotalCleaners   int64 `json:"totalCleaners"`
	ActiveSchedules int64 `json:"activeSchedules"`

	TodayTotal     int64 `json:"todayTotal"`
	TodayCompleted int64 `json:"todayCompleted"`
	TodayPending   int64 `json:"todayPending"`
	TodayHolidays  int64 `json:"todayHolidays"`
}

// GetDashboardOverview returns headline counts plus today's workload
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.Customer{}).Where("deleted_at IS NULL").Count(&overview.TotalCustomers)
	config.DB.Model(&models.Car{}).Where("deleted_at IS NULL").Count(&overview.TotalCars)
	config.DB.Model(&models.Cleaner{}).Where("deleted_at IS NULL").Count(&overview.TotalCleaners)
	config.DB.Model(&models.Schedule{}).
		Where("is_active = ? AND deleted_at IS NULL", true).Count(&overview.ActiveSchedules)

	today := utils.BusinessToday(time.Now())

	config.DB.Model(&models.ScheduleDay{}).Where("date = ?", today).Count(&overview.TodayTotal)
	config.DB.Model(&models.ScheduleDay{}).
		Where("date = ? AND day_type = ?", today, models.DayTypeHoliday).Count(&overview.TodayHolidays)
	config.DB.Model(&models.ScheduleDay{}).
		Where("date = ? AND day_type <> ? AND is_completed = ?", today, models.DayTypeHoliday, true).
		Count(&overview.TodayCompleted)
	overview.TodayPending = overview.TodayTotal - overview.TodayHolidays - overview.TodayCompleted

	c.JSON(http.StatusOK, overview)
}
