package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+919876543210", "9876543210", "+1 (555) 123-4567"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "abc", "0123", "+"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestValidatePlateNumber(t *testing.T) {
	valid := []string{"MH12AB1234", "MH-12-AB-1234", "dl 8 caf 5031", "KA01A1"}
	for _, plate := range valid {
		if !ValidatePlateNumber(plate) {
			t.Errorf("expected %q to be valid", plate)
		}
	}

	invalid := []string{"", "1234", "ABCD", "MH12AB12345"}
	for _, plate := range invalid {
		if ValidatePlateNumber(plate) {
			t.Errorf("expected %q to be invalid", plate)
		}
	}
}

func TestNormalizePlateNumber(t *testing.T) {
	if got := NormalizePlateNumber("mh-12 ab 1234"); got != "MH12AB1234" {
		t.Fatalf("expected MH12AB1234, got %s", got)
	}
}
