package bootstrap

import (
	"fmt"

	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagEmail    = "email"
	flagPassword = "password"
)

// Command provisions the first admin account directly against the store. It
// runs on the server host, not through the API.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "bootstrap-admin",
		Usage: "Create an admin account in the configured database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagEmail,
				Usage:    "Email of the admin account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagPassword,
				Usage:    "Password of the admin account",
				Required: true,
				EnvVars:  []string{"AND_BOOTSTRAP_PASSWORD"},
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			email := ctx.String(flagEmail)
			password := ctx.String(flagPassword)

			user, err := setup.BootstrapAdmin(ctx.Context, conf, email, password)
			if err != nil {
				if errors.Is(err, port.ErrAlreadyExists) {
					return errors.Errorf("a user with email %q already exists", email)
				}

				return errors.WithStack(err)
			}

			fmt.Printf("admin account created: %s (%s)\n", user.Email(), user.ID())

			return nil
		},
	}
}
