package common

import (
	"net/url"

	"github.com/advertisingnotdead/agency/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramServer   = "server"
	paramEmail    = "email"
	paramPassword = "password"
)

var (
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"AND_CLI_SERVER"},
		Usage:   "Agency server base url",
	}
	flagEmail = &cli.StringFlag{
		Name:    paramEmail,
		EnvVars: []string{"AND_CLI_EMAIL"},
		Usage:   "Email used to authenticate against the server",
	}
	flagPassword = &cli.StringFlag{
		Name:    paramPassword,
		EnvVars: []string{"AND_CLI_PASSWORD"},
		Usage:   "Password used to authenticate against the server",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagEmail,
		flagPassword,
	}, flags...)
}

func GetAgencyClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	email := ctx.String(paramEmail)
	password := ctx.String(paramPassword)

	if email != "" {
		serverURL.User = url.UserPassword(email, password)
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}
