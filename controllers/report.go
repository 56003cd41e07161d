// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions
type ReportController struct{}

// CompletionSummary is the operations report for a date range
type CompletionSummary struct {
	From string `json:"from"`
	To   string `json:"to"`

	TotalDays     int64 `json:"totalDays"`
	WorkingDays   int64 `json:"workingDays"`
	CompletedDays int64 `json:"completedDays"`
	MissedDays    int64 `json:"missedDays"`
	HolidayDays   int64 `json:"holidayDays"`

	CompletionRate float64          `json:"completionRate"`
	ByCleaner      []CleanerSummary `json:"byCleaner"`
}

type CleanerSummary struct {
	Name      string `json:"name"`
	Assigned  int64  `json:"assigned"`
	Completed int64  `json:"completed"`
}

// GetCompletionReport summarizes cleaning-day completion between ?from and ?to
// (YYYY-MM-DD, defaults to the last 30 days)
func (rc *ReportController) GetCompletionReport(c *gin.Context) {
	to := utils.BusinessToday(time.Now())
	from := to.AddDate(0, 0, -30)

	if s := c.Query("from"); s != "" {
		parsed, err := utils.ParseDateUTC(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := utils.ParseDateUTC(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		to = parsed
	}

	summary := CompletionSummary{
		From: from.Format(utils.DateLayout),
		To:   to.Format(utils.DateLayout),
	}

	dayRange := func() *gorm.DB {
		return config.DB.Model(&models.ScheduleDay{}).Where("date BETWEEN ? AND ?", from, to)
	}

	dayRange().Count(&summary.TotalDays)
	dayRange().Where("day_type = ?", models.DayTypeHoliday).Count(&summary.HolidayDays)
	dayRange().Where("day_type <> ?", models.DayTypeHoliday).Count(&summary.WorkingDays)
	dayRange().Where("day_type <> ? AND is_completed = ?", models.DayTypeHoliday, true).
		Count(&summary.CompletedDays)
	summary.MissedDays = summary.WorkingDays - summary.CompletedDays

	if summary.WorkingDays > 0 {
		summary.CompletionRate = float64(summary.CompletedDays) / float64(summary.WorkingDays) * 100
	}

	config.DB.Raw(`
		SELECT cl.name,
		       COUNT(*) AS assigned,
		       COUNT(*) FILTER (WHERE d.is_completed) AS completed
		FROM schedule_days d
		JOIN schedules s ON s.id = d.schedule_id
		JOIN cleaners cl ON cl.id = s.cleaner_id
		WHERE d.date BETWEEN ? AND ?
		AND d.day_type <> ?
		AND s.deleted_at IS NULL
		GROUP BY cl.name
		ORDER BY completed DESC
	`, from, to, models.DayTypeHoliday).Scan(&summary.ByCleaner)

	c.JSON(http.StatusOK, summary)
}
