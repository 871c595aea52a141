package service

import (
	"regexp"
	"strings"
)

// Validation mirrors the public contact form rules: a minimal structural
// email check, not an RFC-complete one.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\s-]{9,}$`)
)

type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// FieldErrors maps a field name to its error message. An empty map means the
// submission is valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Validate checks a submission against the contact form rules. It is pure and
// must be re-run on every submission attempt.
func Validate(submission Submission) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(submission.Name) == "" {
		fieldErrors["name"] = "name is required"
	}

	if strings.TrimSpace(submission.Email) == "" {
		fieldErrors["email"] = "email is required"
	} else if !emailPattern.MatchString(submission.Email) {
		fieldErrors["email"] = "invalid email"
	}

	if submission.Phone != "" && !phonePattern.MatchString(submission.Phone) {
		fieldErrors["phone"] = "invalid phone number"
	}

	if strings.TrimSpace(submission.Message) == "" {
		fieldErrors["message"] = "message is required"
	}

	return fieldErrors
}
