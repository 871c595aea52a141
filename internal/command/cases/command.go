package cases

import (
	"fmt"

	"github.com/advertisingnotdead/agency/internal/command/common"
	"github.com/advertisingnotdead/agency/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagTitle       = "title"
	flagDescription = "description"
	flagCategory    = "category"
	flagImageURL    = "image-url"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "cases",
		Usage: "Manage case studies",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List published case studies",
		Flags: common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			caseStudies, err := agency.ListCaseStudies(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			for _, c := range caseStudies {
				fmt.Printf("%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Category, humanize.Time(c.CreatedAt))
			}

			return nil
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Publish a new case study",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagTitle,
				Usage:    "Title of the case study",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagDescription,
				Usage:    "Description of the case study",
				Required: true,
			},
			&cli.StringFlag{
				Name:  flagCategory,
				Usage: "Category of the case study",
			},
			&cli.StringFlag{
				Name:  flagImageURL,
				Usage: "Illustration image URL",
			},
		),
		Action: func(ctx *cli.Context) error {
			agency, err := common.GetAgencyClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			caseStudy, err := agency.CreateCaseStudy(ctx.Context, client.CreateCaseStudyRequest{
				Title:       ctx.String(flagTitle),
				Description: ctx.String(flagDescription),
				Category:    ctx.String(flagCategory),
				ImageURL:    ctx.String(flagImageURL),
			})
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("case study created: %s\n", caseStudy.ID)

			return nil
		},
	}
}
