package service

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/metrics"
	"github.com/pkg/errors"
)

// ContactService handles public contact form submissions. Submissions are
// dispatched to the mail provider only; no lead row is written to the store
// on this path (the dashboard manages leads separately).
type ContactService struct {
	mailer port.Mailer
}

// Submit validates the submission and, when valid, sends it to the mail
// provider. A non-empty FieldErrors return blocks delivery and never reaches
// the network; a non-nil error is a delivery failure and the caller should
// keep the form state for retry.
func (s *ContactService) Submit(ctx context.Context, submission Submission) (FieldErrors, error) {
	fieldErrors := Validate(submission)
	if !fieldErrors.Valid() {
		return fieldErrors, nil
	}

	message := port.Message{
		FromName:  submission.Name,
		FromEmail: submission.Email,
		FromPhone: submission.Phone,
		Body:      submission.Message,
	}

	if err := s.mailer.Send(ctx, message); err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalContactSubmissions.Add(1)

	return nil, nil
}

func NewContactService(mailer port.Mailer) *ContactService {
	return &ContactService{
		mailer: mailer,
	}
}
