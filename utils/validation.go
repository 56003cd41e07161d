// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidatePlateNumber checks a vehicle registration number (letters, digits,
// optional separators), e.g. "MH12AB1234" or "MH-12-AB-1234"
func ValidatePlateNumber(plate string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	regex := `^[A-Z]{2}[0-9]{1,2}[A-Z]{1,3}[0-9]{1,4}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// NormalizePlateNumber stores plates in one canonical form so uniqueness checks
// are not defeated by spacing
func NormalizePlateNumber(plate string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
	return strings.ReplaceAll(cleaned, "-", "")
}
