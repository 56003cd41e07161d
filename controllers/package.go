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

// CreatePackageInput defines the expected JSON structure for creating a package
type CreatePackageInput struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       float64      `json:"price" binding:"required,min=0"`
	Days        int          `json:"days" binding:"required,min=1"`
	Inclusions  models.JSONB `json:"inclusions"`
	Category    string       `json:"category"`
}

// UpdatePackageInput defines the expected JSON structure for updating a package
type UpdatePackageInput struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *float64      `json:"price" binding:"omitempty,min=0"`
	Days        *int          `json:"days" binding:"omitempty,min=1"`
	Inclusions  *models.JSONB `json:"inclusions"`
	Category    *string       `json:"category"`
	IsActive    *bool         `json:"isActive"`
}

// CreatePackage creates a new cleaning package
func CreatePackage(c *gin.Context) {
	var input CreatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.Package
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Package with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	pkg := models.Package{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Days:        input.Days,
		Inclusions:  input.Inclusions,
		Category:    input.Category,
		IsActive:    true,
	}
	if pkg.Inclusions == nil {
		pkg.Inclusions = models.JSONB{}
	}
	if pkg.Category == "" {
		pkg.Category = "Standard"
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// GetPackages retrieves all packages
func GetPackages(c *gin.Context) {
	query := config.DB
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var packages []models.Package
	if err := query.Order("price").Find(&packages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetPackage retrieves a specific package by ID
func GetPackage(c *gin.Context) {
	packageID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage updates an existing package
func UpdatePackage(c *gin.Context) {
	packageID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input UpdatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Description != nil {
		pkg.Description = *input.Description
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Days != nil {
		pkg.Days = *input.Days
	}
	if input.Inclusions != nil {
		pkg.Inclusions = *input.Inclusions
	}
	if input.Category != nil {
		pkg.Category = *input.Category
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&pkg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage soft deletes a package
func DeletePackage(c *gin.Context) {
	packageID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", packageID).Delete(&models.Package{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete package")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}
