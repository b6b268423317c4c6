package codetables

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: "Inspect the booking API code tables",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the entries of a code table",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "table",
						Value: string(TableStations),
						Usage: fmt.Sprintf("one of %v", Tables),
					},
				},
				Action: func(c *cli.Context) error {
					entries, err := List(Table(c.String("table")))
					if err != nil {
						return err
					}

					for _, entry := range entries {
						fmt.Fprintf(c.App.Writer, "%s\t%s\n", entry.Code, entry.Name)
					}

					return nil
				},
			},
		},
	}
}
