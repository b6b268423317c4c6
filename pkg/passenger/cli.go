package passenger

import (
	"fmt"

	"github.com/travigo/srt/pkg/codetables"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	kindFlags := make([]cli.Flag, 0, len(Kinds)+2)
	for _, kind := range Kinds {
		kindFlags = append(kindFlags, &cli.IntFlag{
			Name:  kind.String(),
			Usage: fmt.Sprintf("number of %s passengers", kind.Name()),
		})
	}
	kindFlags = append(kindFlags,
		&cli.BoolFlag{
			Name:  "special",
			Usage: "request first class (특실) seats",
		},
		&cli.StringFlag{
			Name:  "window",
			Usage: "window seat preference: window or aisle",
		},
	)

	return &cli.Command{
		Name:  "passengers",
		Usage: "Build booking API parameters from a passenger list",
		Subcommands: []*cli.Command{
			{
				Name:  "request",
				Usage: "print the reservation request parameters",
				Flags: kindFlags,
				Action: func(c *cli.Context) error {
					var passengers []Passenger
					for _, kind := range Kinds {
						if c.IsSet(kind.String()) {
							passengers = append(passengers, Of(kind, c.Int(kind.String())))
						}
					}
					if len(passengers) == 0 {
						passengers = []Passenger{One(Adult)}
					}

					window := codetables.WindowSeat(c.String("window"))
					switch window {
					case codetables.WindowSeatAny, codetables.WindowSeatWindow, codetables.WindowSeatAisle:
					default:
						return fmt.Errorf("%w: unknown window seat preference %q", ErrInvalidArgument, window)
					}

					params, err := BuildRequest(passengers, SeatPreference{
						Special: c.Bool("special"),
						Window:  window,
					})
					if err != nil {
						return err
					}

					for _, key := range params.Keys() {
						value, _ := params.Get(key)
						fmt.Fprintf(c.App.Writer, "%s=%s\n", key, value)
					}

					return nil
				},
			},
		},
	}
}
