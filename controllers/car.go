package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/services"
	"cleanride-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCarInput defines the expected JSON structure for creating a car
type CreateCarInput struct {
	CustomerID  uuid.UUID    `json:"customerId" binding:"required"`
	BrandID     uuid.UUID    `json:"brandId" binding:"required"`
	CategoryID  uuid.UUID    `json:"categoryId" binding:"required"`
	PlateNumber string       `json:"plateNumber" binding:"required"`
	ModelName   string       `json:"modelName" binding:"required"`
	Color       string       `json:"color"`
	ParkingInfo models.JSONB `json:"parkingInfo"`
}

// UpdateCarInput defines the expected JSON structure for updating a car
type UpdateCarInput struct {
	BrandID     *uuid.UUID    `json:"brandId"`
	CategoryID  *uuid.UUID    `json:"categoryId"`
	PlateNumber *string       `json:"plateNumber"`
	ModelName   *string       `json:"modelName"`
	Color       *string       `json:"color"`
	ParkingInfo *models.JSONB `json:"parkingInfo"`
	IsActive    *bool         `json:"isActive"`
}

// CreateCar registers a customer's car
func CreateCar(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePlateNumber(input.PlateNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plate number format")
		return
	}
	plate := utils.NormalizePlateNumber(input.PlateNumber)

	// Validate references exist
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	var brand models.Brand
	if err := config.DB.First(&brand, "id = ?", input.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Brand not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	var category models.CarCategory
	if err := config.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Check plate uniqueness
	var existing models.Car
	if err := config.DB.Where("plate_number = ?", plate).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Car with this plate number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	car := models.Car{
		CustomerID:      input.CustomerID,
		BrandID:         input.BrandID,
		CategoryID:      input.CategoryID,
		CreatedByUserID: userID,
		PlateNumber:     plate,
		ModelName:       input.ModelName,
		Color:           input.Color,
		ParkingInfo:     input.ParkingInfo,
		IsActive:        true,
	}
	if car.ParkingInfo == nil {
		car.ParkingInfo = models.JSONB{}
	}

	if err := config.DB.Create(&car).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create car")
		return
	}

	c.JSON(http.StatusCreated, car)
}

// GetCars retrieves all cars, optionally filtered by customer
func GetCars(c *gin.Context) {
	query := config.DB.Preload("Brand").Preload("Category")
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var cars []models.Car
	if err := query.Find(&cars).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cars")
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar retrieves a specific car by ID
func GetCar(c *gin.Context) {
	carID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var car models.Car
	if err := config.DB.Preload("Brand").Preload("Category").
		First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, car)
}

// UpdateCar updates an existing car
func UpdateCar(c *gin.Context) {
	carID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var car models.Car
	if err := config.DB.First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PlateNumber != nil {
		if !utils.ValidatePlateNumber(*input.PlateNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid plate number format")
			return
		}
		plate := utils.NormalizePlateNumber(*input.PlateNumber)
		if plate != car.PlateNumber {
			var existing models.Car
			if err := config.DB.Where("plate_number = ?", plate).First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another car with this plate number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		car.PlateNumber = plate
	}
	if input.BrandID != nil {
		car.BrandID = *input.BrandID
	}
	if input.CategoryID != nil {
		car.CategoryID = *input.CategoryID
	}
	if input.ModelName != nil {
		car.ModelName = *input.ModelName
	}
	if input.Color != nil {
		car.Color = *input.Color
	}
	if input.ParkingInfo != nil {
		car.ParkingInfo = *input.ParkingInfo
	}
	if input.IsActive != nil {
		car.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&car).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update car")
		return
	}

	c.JSON(http.StatusOK, car)
}

// DeleteCar soft deletes a car
func DeleteCar(c *gin.Context) {
	carID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", carID).Delete(&models.Car{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete car")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}

// GetCarQR returns the windshield sticker QR as a PNG
func GetCarQR(c *gin.Context) {
	carID, ok := parseParamUUID(c, "id")
	if !ok {
		return
	}

	var car models.Car
	if err := config.DB.First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	png, err := services.CarQRPNG(&car, size)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
