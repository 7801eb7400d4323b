package password

import (
	"strings"
	"unicode"
)

// MinLength is the shortest accepted admin password.
const MinLength = 10

// ValidationError represents a password validation error
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidatePasswordConfirmation checks if password and confirmation match
func ValidatePasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ValidationError{Message: "Passwords do not match"}
	}
	return nil
}

// ValidatePasswordStrength checks if a password meets minimum requirements
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < MinLength {
		return ValidationError{Message: "Password must be at least 10 characters long"}
	}

	// Check for at least one letter and one number
	hasLetter := false
	hasNumber := false

	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsNumber(char) {
			hasNumber = true
		}
	}

	if !hasLetter {
		return ValidationError{Message: "Password must contain at least one letter"}
	}

	if !hasNumber {
		return ValidationError{Message: "Password must contain at least one number"}
	}

	return nil
}

// ValidatePasswordChange validates a password change operation
func ValidatePasswordChange(currentPassword, newPassword, confirmPassword string) error {
	// Check if current password is provided
	if currentPassword == "" {
		return ValidationError{Message: "Current password is required"}
	}

	// Check if new password is provided
	if newPassword == "" {
		return ValidationError{Message: "New password is required"}
	}

	// Check if new password is different from current
	if currentPassword == newPassword {
		return ValidationError{Message: "New password must be different from current password"}
	}

	// Validate password confirmation
	if err := ValidatePasswordConfirmation(newPassword, confirmPassword); err != nil {
		return err
	}

	// Validate new password strength
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	return nil
}

// ValidateAdminName checks a dashboard login name: 3 to 32 characters of
// letters, digits, dots, dashes or underscores.
func ValidateAdminName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 32 {
		return ValidationError{Message: "Name must be between 3 and 32 characters"}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("._-", r) {
			return ValidationError{Message: "Name may only contain letters, digits, dots, dashes and underscores"}
		}
	}
	return nil
}
