package main

import (
	"fmt"
	"log"
	"os"

	"cleanride-backend/config"
	"cleanride-backend/models"
	"cleanride-backend/routes"
	"cleanride-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.InitRedis()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.CarCategory{},
		&models.Customer{},
		&models.Car{},
		&models.Cleaner{},
		&models.Package{},
		&models.CityHoliday{},
		&models.HolidayDate{},
		&models.Counter{},
		&models.Schedule{},
		&models.ScheduleDay{},
		&models.ReminderLog{},
	)
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
