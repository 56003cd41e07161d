// services/qr_service.go
package services

import (
	"fmt"

	"cleanride-backend/models"

	qrcode "github.com/skip2/go-qrcode"
)

const qrDefaultSize = 256

// ScheduleQRPNG renders the QR asset cleaners scan to pull up an engagement.
// The payload is the app deep link carrying the schedule id and display code.
func ScheduleQRPNG(schedule *models.Schedule, size int) ([]byte, error) {
	if size <= 0 {
		size = qrDefaultSize
	}
	payload := fmt.Sprintf("cleanride://schedule/%s?code=%s", schedule.ID, schedule.DisplayCode)
	return qrcode.Encode(payload, qrcode.Medium, size)
}

// CarQRPNG renders the sticker QR pasted on the car's windshield
func CarQRPNG(car *models.Car, size int) ([]byte, error) {
	if size <= 0 {
		size = qrDefaultSize
	}
	payload := fmt.Sprintf("cleanride://car/%s?plate=%s", car.ID, car.PlateNumber)
	return qrcode.Encode(payload, qrcode.Medium, size)
}
