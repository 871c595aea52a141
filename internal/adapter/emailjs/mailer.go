package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
)

// Mailer sends contact submissions through the EmailJS REST API. Template
// parameter names are part of the provider-side template contract.
type Mailer struct {
	endpoint   *url.URL
	serviceID  string
	templateID string
	publicKey  string
	httpClient *http.Client
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	FromPhone string `json:"from_phone"`
	Message   string `json:"message"`
}

// Send implements port.Mailer.
func (m *Mailer) Send(ctx context.Context, message port.Message) error {
	payload := sendRequest{
		ServiceID:  m.serviceID,
		TemplateID: m.templateID,
		UserID:     m.publicKey,
		TemplateParams: templateParams{
			FromName:  message.FromName,
			FromEmail: message.FromEmail,
			FromPhone: message.FromPhone,
			Message:   message.Body,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Content-Type", "application/json")

	slog.DebugContext(ctx, "sending contact email", slog.String("service_id", m.serviceID), slog.String("template_id", m.templateID))

	res, err := m.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return errors.Errorf("unexpected response code %d (%s): %s", res.StatusCode, res.Status, detail)
	}

	return nil
}

var _ port.Mailer = &Mailer{}

func NewMailer(serviceID, templateID, publicKey string, funcs ...OptionFunc) *Mailer {
	opts := NewOptions(funcs...)
	return &Mailer{
		endpoint:   opts.Endpoint,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		httpClient: opts.HTTPClient,
	}
}
