package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/services"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompleteDayInput defines the expected JSON structure for marking a day done
type CompleteDayInput struct {
	IsCompleted *bool   `json:"isCompleted" binding:"required"`
	Notes       *string `json:"notes"`
}

func scheduleBuilder() *services.ScheduleBuilder {
	return services.NewScheduleBuilder(holidayService(), nil)
}

// respondScheduleError maps builder/generator failures to HTTP statuses.
// Validation failures are 400; a failing holiday collaborator is the server's
// problem, not the caller's.
func respondScheduleError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrHolidayLookup) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Holiday lookup failed")
		return
	}
	utils.RespondWithError(c, http.StatusBadRequest, err.Error())
}

// CreateSchedule creates a cleaning engagement: validates references, builds the
// aggregate (generating the day calendar unless the caller supplied one) and
// persists it with the next sequential code. Nothing is written when any step fails.
func CreateSchedule(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input services.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate references exist
	var car models.Car
	if err := config.DB.First(&car, "id = ?", input.CarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Car not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	var pkg models.Package
	if err := config.DB.First(&pkg, "id = ?", input.PackageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if input.CityHolidayID != nil {
		var calendar models.CityHoliday
		if err := config.DB.First(&calendar, "id = ?", *input.CityHolidayID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Holiday calendar not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	schedule, err := scheduleBuilder().Build(input, userID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		code, err := models.NextSequence(tx, models.SequenceSchedule)
		if err != nil {
			return err
		}
		schedule.Code = code
		return tx.Create(schedule).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedules retrieves schedules with optional filters
func GetSchedules(c *gin.Context) {
	query := config.DB.
		Preload("ScheduleDays", func(db *gorm.DB) *gorm.DB { return db.Order("date") })

	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if carID := c.Query("carId"); carID != "" {
		query = query.Where("car_id = ?", carID)
	}
	if cleanerID := c.Query("cleanerId"); cleanerID != "" {
		query = query.Where("cleaner_id = ?", cleanerID)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var schedules []models.Schedule
	if err := query.Order("code").Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetSchedule retrieves a specific schedule by ID
func GetSchedule(c *gin.Context) {
	scheduleID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var schedule models.Schedule
	if err := config.DB.
		Preload("ScheduleDays", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).
		Preload("Car").Preload("Package").Preload("Customer").
		First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateSchedule applies changes to a schedule. The day calendar is replaced in
// one transaction when (and only when) the builder regenerated it.
func UpdateSchedule(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}
	scheduleID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input services.ScheduleUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var schedule models.Schedule
	if err := config.DB.
		Preload("ScheduleDays", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).
		First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	regenerated, err := scheduleBuilder().Rebuild(&schedule, input, userID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if regenerated {
			// replace the whole day list, never patch in place
			if err := tx.Where("schedule_id = ?", schedule.ID).
				Delete(&models.ScheduleDay{}).Error; err != nil {
				return err
			}
			for i := range schedule.ScheduleDays {
				schedule.ScheduleDays[i].ScheduleID = schedule.ID
			}
			if len(schedule.ScheduleDays) > 0 {
				if err := tx.Create(&schedule.ScheduleDays).Error; err != nil {
					return err
				}
			}
		}
		return tx.Omit(clause.Associations).Save(&schedule).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule soft deletes a schedule, recording who deleted it
func DeleteSchedule(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}
	scheduleID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var schedule models.Schedule
	if err := config.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schedule).
			Updates(map[string]interface{}{"deleted_by_id": userID, "is_active": false}).Error; err != nil {
			return err
		}
		return tx.Delete(&schedule).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}

// CompleteScheduleDay marks a day as done (or not). Cleaners call this from the
// field after scanning the car QR. Holiday days cannot be completed.
func CompleteScheduleDay(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}
	scheduleID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}
	dayID, ok := parseParamUUID(c, "dayId")
	if !ok {
		return
	}

	var input CompleteDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var day models.ScheduleDay
	if err := config.DB.Where("schedule_id = ? AND id = ?", scheduleID, dayID).
		First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule day not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if day.DayType == models.DayTypeHoliday {
		utils.RespondWithError(c, http.StatusBadRequest, "Holiday days cannot be completed")
		return
	}

	day.IsCompleted = *input.IsCompleted
	if day.IsCompleted {
		day.CompletedByID = &userID
	} else {
		day.CompletedByID = nil
	}
	if input.Notes != nil {
		day.Notes = *input.Notes
	}

	if err := config.DB.Save(&day).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule day")
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetScheduleQR returns the schedule's QR asset as a PNG
func GetScheduleQR(c *gin.Context) {
	scheduleID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var schedule models.Schedule
	if err := config.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	png, err := services.ScheduleQRPNG(&schedule, size)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GetTodaySchedule lists today's pending working days for the cleaner app
func GetTodaySchedule(c *gin.Context) {
	today := utils.BusinessToday(time.Now())

	var days []models.ScheduleDay
	if err := config.DB.Where("date = ? AND day_type <> ?", today, models.DayTypeHoliday).
		Order("created_at").Find(&days).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve today's schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": today.Format(utils.DateLayout), "days": days})
}
