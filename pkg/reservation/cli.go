package reservation

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// LoadRawFile reads a raw reservation stored as YAML or JSON
func LoadRawFile(path string) (RawReservation, error) {
	var raw RawReservation

	data, err := os.ReadFile(path)
	if err != nil {
		return raw, err
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("parse %s: %w", path, err)
	}

	return raw, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "reservation",
		Usage: "Decode raw booking API reservation responses",
		Subcommands: []*cli.Command{
			{
				Name:  "decode",
				Usage: "decode a saved reservation response and print its summary",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "YAML or JSON file with train, payment and tickets",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "dump every decoded field",
					},
				},
				Action: func(c *cli.Context) error {
					raw, err := LoadRawFile(c.String("file"))
					if err != nil {
						return err
					}

					decoded, err := DecodeRaw(raw)
					if err != nil {
						return err
					}

					log.Debug().Str("reservation", decoded.ReservationNumber).Int("tickets", len(raw.Tickets)).Msg("Decoded reservation")

					fmt.Fprintln(c.App.Writer, decoded.String())
					for _, ticket := range decoded.Tickets() {
						fmt.Fprintf(c.App.Writer, "  %s\n", ticket)
					}

					if c.Bool("verbose") {
						pretty.Fprintf(c.App.Writer, "%# v\n", decoded)
					}

					return nil
				},
			},
		},
	}
}
