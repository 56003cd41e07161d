package controllers

import (
	"errors"
	"net/http"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCleanerInput defines the expected JSON structure for creating a cleaner
type CreateCleanerInput struct {
	Name   string     `json:"name" binding:"required"`
	Phone  string     `json:"phone" binding:"required"`
	Area   string     `json:"area"`
	UserID *uuid.UUID `json:"userId"`
}

// UpdateCleanerInput defines the expected JSON structure for updating a cleaner
type UpdateCleanerInput struct {
	Name     *string    `json:"name"`
	Phone    *string    `json:"phone"`
	Area     *string    `json:"area"`
	UserID   *uuid.UUID `json:"userId"`
	IsActive *bool      `json:"isActive"`
}

// CreateCleaner creates a new cleaner profile
func CreateCleaner(c *gin.Context) {
	var input CreateCleanerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var existing models.Cleaner
	if err := config.DB.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Cleaner with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	cleaner := models.Cleaner{
		Name:     input.Name,
		Phone:    input.Phone,
		Area:     input.Area,
		UserID:   input.UserID,
		IsActive: true,
	}

	if err := config.DB.Create(&cleaner).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create cleaner")
		return
	}

	c.JSON(http.StatusCreated, cleaner)
}

// GetCleaners retrieves all cleaners, optionally filtered by area
func GetCleaners(c *gin.Context) {
	query := config.DB
	if area := c.Query("area"); area != "" {
		query = query.Where("area = ?", area)
	}

	var cleaners []models.Cleaner
	if err := query.Order("name").Find(&cleaners).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cleaners")
		return
	}

	c.JSON(http.StatusOK, cleaners)
}

// GetCleaner retrieves a specific cleaner by ID
func GetCleaner(c *gin.Context) {
	cleanerID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var cleaner models.Cleaner
	if err := config.DB.First(&cleaner, "id = ?", cleanerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cleaner not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, cleaner)
}

// UpdateCleaner updates an existing cleaner
func UpdateCleaner(c *gin.Context) {
	cleanerID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateCleanerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var cleaner models.Cleaner
	if err := config.DB.First(&cleaner, "id = ?", cleanerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cleaner not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		cleaner.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if cleaner.Phone != *input.Phone {
			var existing models.Cleaner
			if err := config.DB.Where("phone = ?", *input.Phone).First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another cleaner with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		cleaner.Phone = *input.Phone
	}
	if input.Area != nil {
		cleaner.Area = *input.Area
	}
	if input.UserID != nil {
		cleaner.UserID = input.UserID
	}
	if input.IsActive != nil {
		cleaner.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&cleaner).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cleaner")
		return
	}

	c.JSON(http.StatusOK, cleaner)
}

// DeleteCleaner soft deletes a cleaner
func DeleteCleaner(c *gin.Context) {
	cleanerID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", cleanerID).Delete(&models.Cleaner{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete cleaner")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cleaner not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cleaner deleted successfully"})
}
