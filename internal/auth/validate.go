package auth

import (
	"regexp"
	"strings"
)

// ValidationError is a local pre-network failure; it never reaches the API.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// Nepali mobile numbers: optional country code, then 96-99 and 8 digits
	phonePattern = regexp.MustCompile(`^(\+?977)?9[6-9]\d{8}$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

// NormalizePhone strips spaces and hyphens so "98-000 00000" style input
// validates like its compact form.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phone
}

// ValidatePhone checks the national mobile-number pattern.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(NormalizePhone(phone)) {
		return &ValidationError{Field: "phone_number", Message: "enter a valid mobile number"}
	}
	return nil
}

// ValidateOTP checks for exactly six digits.
func ValidateOTP(code string) error {
	if !otpPattern.MatchString(code) {
		return &ValidationError{Field: "otp", Message: "the code must be 6 digits"}
	}
	return nil
}
