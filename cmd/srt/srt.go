package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/srt/pkg/api"
	"github.com/travigo/srt/pkg/codetables"
	"github.com/travigo/srt/pkg/passenger"
	"github.com/travigo/srt/pkg/reservation"
	"github.com/travigo/srt/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	env := util.GetEnvironmentVariables()

	if env["SRT_LOG_FORMAT"] != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if env["SRT_DEBUG"] == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "srt",
		Description: "Builds SRT booking requests and decodes reservation responses",

		Commands: []*cli.Command{
			passenger.RegisterCLI(),
			reservation.RegisterCLI(),
			codetables.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
