package controllers

import (
	"errors"
	"net/http"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCategoryInput defines the expected JSON structure for creating a car category
type CreateCategoryInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	PriceMultiplier float64 `json:"priceMultiplier" binding:"omitempty,min=0"`
}

// UpdateCategoryInput defines the expected JSON structure for updating a car category
type UpdateCategoryInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	PriceMultiplier *float64 `json:"priceMultiplier" binding:"omitempty,min=0"`
	IsActive        *bool    `json:"isActive"`
}

// CreateCategory creates a new car category
func CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.CarCategory
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Category with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	category := models.CarCategory{
		Name:            input.Name,
		Description:     input.Description,
		PriceMultiplier: input.PriceMultiplier,
		IsActive:        true,
	}
	if category.PriceMultiplier == 0 {
		category.PriceMultiplier = 1.0
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories retrieves all car categories
func GetCategories(c *gin.Context) {
	var categories []models.CarCategory
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific car category by ID
func GetCategory(c *gin.Context) {
	categoryID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var category models.CarCategory
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory updates an existing car category
func UpdateCategory(c *gin.Context) {
	categoryID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var category models.CarCategory
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.PriceMultiplier != nil {
		category.PriceMultiplier = *input.PriceMultiplier
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory soft deletes a car category
func DeleteCategory(c *gin.Context) {
	categoryID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", categoryID).Delete(&models.CarCategory{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
