package controllers

import (
	"errors"
	"net/http"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/services"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCityHolidayInput defines the expected JSON structure for creating a holiday calendar
type CreateCityHolidayInput struct {
	City  string             `json:"city" binding:"required"`
	Dates []HolidayDateInput `json:"dates"`
}

// HolidayDateInput is one calendar date entry
type HolidayDateInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Name string `json:"name"`
}

func holidayService() *services.HolidayService {
	return services.NewHolidayService(config.DB, config.RedisClient)
}

// CreateCityHoliday creates a holiday calendar with its initial dates
func CreateCityHoliday(c *gin.Context) {
	var input CreateCityHolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.CityHoliday
	if err := config.DB.Where("city = ?", input.City).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Holiday calendar for this city already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	calendar := models.CityHoliday{City: input.City, IsActive: true}
	for _, d := range input.Dates {
		date, err := utils.ParseDateUTC(d.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date: "+d.Date)
			return
		}
		calendar.Dates = append(calendar.Dates, models.HolidayDate{Date: date, Name: d.Name})
	}

	if err := config.DB.Create(&calendar).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create holiday calendar")
		return
	}

	c.JSON(http.StatusCreated, calendar)
}

// GetCityHolidays retrieves all holiday calendars
func GetCityHolidays(c *gin.Context) {
	var calendars []models.CityHoliday
	if err := config.DB.Preload("Dates").Order("city").Find(&calendars).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve holiday calendars")
		return
	}
	c.JSON(http.StatusOK, calendars)
}

// GetCityHoliday retrieves a specific holiday calendar by ID
func GetCityHoliday(c *gin.Context) {
	calendarID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var calendar models.CityHoliday
	if err := config.DB.Preload("Dates").First(&calendar, "id = ?", calendarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Holiday calendar not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// UpdateCityHolidayInput defines the expected JSON structure for updating a calendar
type UpdateCityHolidayInput struct {
	City     *string `json:"city"`
	IsActive *bool   `json:"isActive"`
}

// UpdateCityHoliday updates a holiday calendar's city name or active flag
func UpdateCityHoliday(c *gin.Context) {
	calendarID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateCityHolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var calendar models.CityHoliday
	if err := config.DB.First(&calendar, "id = ?", calendarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Holiday calendar not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.City != nil && *input.City != calendar.City {
		var existing models.CityHoliday
		if err := config.DB.Where("city = ? AND id <> ?", *input.City, calendarID).
			First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Holiday calendar for this city already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		calendar.City = *input.City
	}
	if input.IsActive != nil {
		calendar.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&calendar).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update holiday calendar")
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// AddHolidayDate appends a date to a calendar. Cached holiday sets for the
// calendar are invalidated so subsequent schedule generation sees the change.
func AddHolidayDate(c *gin.Context) {
	calendarID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input HolidayDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDateUTC(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date: "+input.Date)
		return
	}

	var calendar models.CityHoliday
	if err := config.DB.First(&calendar, "id = ?", calendarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Holiday calendar not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var existing models.HolidayDate
	if err := config.DB.Where("city_holiday_id = ? AND date = ?", calendarID, date).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Date already in calendar")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	holidayDate := models.HolidayDate{
		CityHolidayID: calendarID,
		Date:          date,
		Name:          input.Name,
	}
	if err := config.DB.Create(&holidayDate).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add holiday date")
		return
	}

	holidayService().InvalidateCache(calendarID)

	c.JSON(http.StatusCreated, holidayDate)
}

// RemoveHolidayDate removes a date from a calendar
func RemoveHolidayDate(c *gin.Context) {
	calendarID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}
	dateID, ok := parseParamUUID(c, "dateId")
	if !ok {
		return
	}

	result := config.DB.Where("city_holiday_id = ? AND id = ?", calendarID, dateID).
		Delete(&models.HolidayDate{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove holiday date")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Holiday date not found")
		return
	}

	holidayService().InvalidateCache(calendarID)

	c.JSON(http.StatusOK, gin.H{"message": "Holiday date removed successfully"})
}

// DeleteCityHoliday soft deletes a holiday calendar
func DeleteCityHoliday(c *gin.Context) {
	calendarID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", calendarID).Delete(&models.CityHoliday{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete holiday calendar")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Holiday calendar not found")
		return
	}

	holidayService().InvalidateCache(calendarID)

	c.JSON(http.StatusOK, gin.H{"message": "Holiday calendar deleted successfully"})
}
