package service

import (
	"testing"
)

func TestValidate(t *testing.T) {
	type testCase struct {
		Name       string
		Submission Submission
		Errors     map[string]string
	}

	testCases := []testCase{
		{
			Name: "valid without phone",
			Submission: Submission{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Message: "We need a campaign.",
			},
			Errors: map[string]string{},
		},
		{
			Name: "valid with phone",
			Submission: Submission{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Phone:   "+33 6 12 34 56 78",
				Message: "We need a campaign.",
			},
			Errors: map[string]string{},
		},
		{
			Name:       "everything empty",
			Submission: Submission{},
			Errors: map[string]string{
				"name":    "name is required",
				"email":   "email is required",
				"message": "message is required",
			},
		},
		{
			Name: "whitespace only fields",
			Submission: Submission{
				Name:    "   ",
				Email:   "jane@example.com",
				Message: "\t\n",
			},
			Errors: map[string]string{
				"name":    "name is required",
				"message": "message is required",
			},
		},
		{
			Name: "malformed email",
			Submission: Submission{
				Name:    "Jane Doe",
				Email:   "jane@example",
				Message: "Hello",
			},
			Errors: map[string]string{
				"email": "invalid email",
			},
		},
		{
			Name: "email with spaces",
			Submission: Submission{
				Name:    "Jane Doe",
				Email:   "jane doe@example.com",
				Message: "Hello",
			},
			Errors: map[string]string{
				"email": "invalid email",
			},
		},
		{
			Name: "phone too short",
			Submission: Submission{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Phone:   "0612",
				Message: "Hello",
			},
			Errors: map[string]string{
				"phone": "invalid phone number",
			},
		},
		{
			Name: "phone with letters",
			Submission: Submission{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Phone:   "06 12 34 56 ab",
				Message: "Hello",
			},
			Errors: map[string]string{
				"phone": "invalid phone number",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			fieldErrors := Validate(tc.Submission)

			if e, g := len(tc.Errors), len(fieldErrors); e != g {
				t.Errorf("len(fieldErrors): expected %d, got %d (%v)", e, g, fieldErrors)
			}

			for field, message := range tc.Errors {
				if e, g := message, fieldErrors[field]; e != g {
					t.Errorf("fieldErrors[%q]: expected %q, got %q", field, e, g)
				}
			}

			if e, g := len(tc.Errors) == 0, fieldErrors.Valid(); e != g {
				t.Errorf("fieldErrors.Valid(): expected %v, got %v", e, g)
			}
		})
	}
}
