package stats

import (
	"fmt"

	"github.com/advertisingnotdead/agency/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show dashboard counters",
		Flags: common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			stats, err := agency.GetStats(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("leads:\t%d\n", stats.TotalLeads)
			fmt.Printf("cases:\t%d\n", stats.TotalCaseStudies)
			fmt.Printf("users:\t%d\n", stats.TotalUsers)

			return nil
		},
	}
}
