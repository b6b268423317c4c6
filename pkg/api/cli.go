package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/srt/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the passenger and reservation web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: util.GetEnvironmentVariable("SRT_LISTEN", ":8080"),
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					log.Info().Str("listen", c.String("listen")).Msg("Starting web API")

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
