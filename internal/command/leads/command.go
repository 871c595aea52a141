package leads

import (
	"fmt"

	"github.com/advertisingnotdead/agency/internal/command/common"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagLead   = "lead"
	flagStatus = "status"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "leads",
		Usage: "Manage leads",
		Subcommands: []*cli.Command{
			listCommand(),
			setStatusCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List leads",
		Flags: common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			leads, err := agency.ListLeads(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			for _, l := range leads {
				fmt.Printf("%s\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Email, l.Status, humanize.Time(l.CreatedAt))
			}

			return nil
		},
	}
}

func setStatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "set-status",
		Usage: "Update the status of a lead",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagLead,
				Usage:    "ID of the lead",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagStatus,
				Usage:    "New status (new, contacted, converted, archived)",
				Required: true,
			},
		),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			lead, err := agency.UpdateLeadStatus(ctx.Context, ctx.String(flagLead), ctx.String(flagStatus))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("lead %s is now %s\n", lead.ID, lead.Status)

			return nil
		},
	}
}
