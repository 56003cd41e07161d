package routes

import (
	"cleanride-backend/config"
	"cleanride-backend/controllers"
	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	staff := utils.RequireRoles(models.RoleAdmin, models.RoleManager)
	adminOnly := utils.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Brand routes
		brands := api.Group("/brands")
		{
			brands.GET("", controllers.GetBrands)
			brands.GET("/:id", controllers.GetBrand)
			brands.POST("", staff, controllers.CreateBrand)
			brands.PUT("/:id", staff, controllers.UpdateBrand)
			brands.DELETE("/:id", staff, controllers.DeleteBrand)
		}

		// Car category routes
		categories := api.Group("/categories")
		{
			categories.GET("", controllers.GetCategories)
			categories.GET("/:id", controllers.GetCategory)
			categories.POST("", staff, controllers.CreateCategory)
			categories.PUT("/:id", staff, controllers.UpdateCategory)
			categories.DELETE("/:id", staff, controllers.DeleteCategory)
		}

		// Customer routes
		customers := api.Group("/customers")
		customers.Use(staff)
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Car routes
		cars := api.Group("/cars")
		{
			cars.GET("", controllers.GetCars)
			cars.GET("/:id", controllers.GetCar)
			cars.GET("/:id/qr", controllers.GetCarQR)
			cars.POST("", staff, controllers.CreateCar)
			cars.PUT("/:id", staff, controllers.UpdateCar)
			cars.DELETE("/:id", staff, controllers.DeleteCar)
		}

		// Cleaner routes
		cleaners := api.Group("/cleaners")
		cleaners.Use(staff)
		{
			cleaners.POST("", controllers.CreateCleaner)
			cleaners.GET("", controllers.GetCleaners)
			cleaners.GET("/:id", controllers.GetCleaner)
			cleaners.PUT("/:id", controllers.UpdateCleaner)
			cleaners.DELETE("/:id", controllers.DeleteCleaner)
		}

		// Package routes
		packages := api.Group("/packages")
		{
			packages.GET("", controllers.GetPackages)
			packages.GET("/:id", controllers.GetPackage)
			packages.POST("", staff, controllers.CreatePackage)
			packages.PUT("/:id", staff, controllers.UpdatePackage)
			packages.DELETE("/:id", staff, controllers.DeletePackage)
		}

		// Holiday calendar routes
		holidays := api.Group("/holidays")
		{
			holidays.GET("", controllers.GetCityHolidays)
			holidays.GET("/:id", controllers.GetCityHoliday)
			holidays.POST("", staff, controllers.CreateCityHoliday)
			holidays.PUT("/:id", staff, controllers.UpdateCityHoliday)
			holidays.POST("/:id/dates", staff, controllers.AddHolidayDate)
			holidays.DELETE("/:id/dates/:dateId", staff, controllers.RemoveHolidayDate)
			holidays.DELETE("/:id", staff, controllers.DeleteCityHoliday)
		}

		// Schedule routes
		schedules := api.Group("/schedules")
		{
			schedules.GET("", controllers.GetSchedules)
			schedules.GET("/today", controllers.GetTodaySchedule)
			schedules.GET("/:id", controllers.GetSchedule)
			schedules.GET("/:id/qr", controllers.GetScheduleQR)
			schedules.POST("", staff, controllers.CreateSchedule)
			schedules.PUT("/:id", staff, controllers.UpdateSchedule)
			schedules.DELETE("/:id", staff, controllers.DeleteSchedule)

			// Cleaners tick off days from the field
			schedules.PATCH("/:id/days/:dayId", controllers.CompleteScheduleDay)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports/completion", staff, reportController.GetCompletionReport)

		// Dashboard routes
		api.GET("/dashboard", staff, controllers.GetDashboardOverview)

		// Employee routes
		employees := api.Group("/employees")
		employees.Use(adminOnly)
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}
	}

	return r
}
