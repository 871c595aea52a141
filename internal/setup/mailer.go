package setup

import (
	"context"
	"net/url"

	"github.com/advertisingnotdead/agency/internal/adapter/emailjs"
	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
)

var getMailerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Mailer, error) {
	opts := []emailjs.OptionFunc{}

	if conf.Email.Endpoint != "" {
		endpoint, err := url.Parse(conf.Email.Endpoint)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse email endpoint")
		}

		opts = append(opts, emailjs.WithEndpoint(endpoint))
	}

	mailer := emailjs.NewMailer(conf.Email.ServiceID, conf.Email.TemplateID, conf.Email.PublicKey, opts...)

	return mailer, nil
})
