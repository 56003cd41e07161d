// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cleanride-backend/models"
	"cleanride-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService messages customers the evening before a cleaning day
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	// Cron runs in the business timezone so "every evening" means evening for
	// the customers, not for the server
	c := cron.New(cron.WithLocation(utils.BusinessTimezone))

	// Run every day at 7 PM
	c.AddFunc("0 19 * * *", func() {
		s.SendVisitReminders()
	})

	c.Start()
	log.Println("Visit reminder scheduler started")
}

// SendVisitReminders notifies customers about tomorrow's pending cleaning days
func (s *ReminderService) SendVisitReminders() {
	log.Println("Starting visit reminder processing...")

	tomorrow := utils.BusinessToday(time.Now()).AddDate(0, 0, 1)

	var days []models.ScheduleDay
	if err := s.db.Where("date = ? AND day_type <> ? AND is_completed = ?",
		tomorrow, models.DayTypeHoliday, false).Find(&days).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's cleaning days: %v", err)
		return
	}

	for _, day := range days {
		s.sendVisitReminder(day)
	}

	log.Printf("Visit reminder processing completed (%d days)", len(days))
}

func (s *ReminderService) sendVisitReminder(day models.ScheduleDay) {
	var schedule models.Schedule
	if err := s.db.Preload("Customer").Preload("Car").
		First(&schedule, "id = ?", day.ScheduleID).Error; err != nil {
		log.Printf("Day %s: failed to load schedule: %v", day.ID, err)
		return
	}
	if !schedule.IsActive {
		return
	}

	kind := "exterior"
	if day.DayType == models.DayTypeInternal {
		kind = "interior"
	}
	message := fmt.Sprintf("Hi %s, your car %s is due for %s cleaning tomorrow (%s).",
		schedule.Customer.Name, schedule.Car.PlateNumber, kind, day.Date.Format(utils.DateLayout))

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	to := schedule.Customer.Phone
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", schedule.Customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", schedule.Customer.Phone, *resp.Sid)
	}

	reminderLog := models.ReminderLog{
		ScheduleID:    schedule.ID,
		ScheduleDayID: day.ID,
		CustomerID:    schedule.CustomerID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for schedule %s: %v", schedule.ID, err)
	}
}
