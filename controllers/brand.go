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

// CreateBrandInput defines the expected JSON structure for creating a brand
type CreateBrandInput struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
}

// UpdateBrandInput defines the expected JSON structure for updating a brand
type UpdateBrandInput struct {
	Name     *string `json:"name"`
	Country  *string `json:"country"`
	IsActive *bool   `json:"isActive"`
}

// CreateBrand creates a new car brand
func CreateBrand(c *gin.Context) {
	var input CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.Brand
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Brand with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	brand := models.Brand{
		Name:     input.Name,
		Country:  input.Country,
		IsActive: true,
	}

	if err := config.DB.Create(&brand).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create brand")
		return
	}

	c.JSON(http.StatusCreated, brand)
}

// GetBrands retrieves all brands
func GetBrands(c *gin.Context) {
	var brands []models.Brand
	if err := config.DB.Order("name").Find(&brands).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve brands")
		return
	}
	c.JSON(http.StatusOK, brands)
}

// GetBrand retrieves a specific brand by ID
func GetBrand(c *gin.Context) {
	brandID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var brand models.Brand
	if err := config.DB.First(&brand, "id = ?", brandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, brand)
}

// UpdateBrand updates an existing brand
func UpdateBrand(c *gin.Context) {
	brandID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var brand models.Brand
	if err := config.DB.First(&brand, "id = ?", brandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil && *input.Name != brand.Name {
		var existing models.Brand
		if err := config.DB.Where("name = ?", *input.Name).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another brand with this name already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		brand.Name = *input.Name
	}
	if input.Country != nil {
		brand.Country = *input.Country
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&brand).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update brand")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DeleteBrand soft deletes a brand
func DeleteBrand(c *gin.Context) {
	brandID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", brandID).Delete(&models.Brand{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete brand")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}
