package users

import (
	"fmt"

	"github.com/advertisingnotdead/agency/internal/command/common"
	"github.com/advertisingnotdead/agency/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUserEmail    = "user-email"
	flagUserPassword = "user-password"
	flagUserRole     = "user-role"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage dashboard users",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List dashboard users",
		Flags: common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := agency.ListUsers(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			for _, u := range users {
				fmt.Printf("%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, humanize.Time(u.CreatedAt))
			}

			return nil
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a dashboard user",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagUserEmail,
				Usage:    "Email of the new user",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagUserPassword,
				Usage:    "Password of the new user",
				Required: true,
			},
			&cli.StringFlag{
				Name:  flagUserRole,
				Usage: "Role of the new user (admin, editor)",
				Value: "editor",
			},
		),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			user, err := agency.CreateUser(ctx.Context, client.CreateUserRequest{
				Email:    ctx.String(flagUserEmail),
				Password: ctx.String(flagUserPassword),
				Role:     ctx.String(flagUserRole),
			})
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("user created: %s (%s)\n", user.Email, user.ID)

			return nil
		},
	}
}
