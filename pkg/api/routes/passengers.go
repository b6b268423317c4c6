package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/srt/pkg/codetables"
	"github.com/travigo/srt/pkg/passenger"
)

type passengerRequestBody struct {
	Passengers []struct {
		Type  string `json:"type"`
		Count *int   `json:"count"`
	} `json:"passengers"`

	Special bool   `json:"special"`
	Window  string `json:"window"`
}

func PassengersRouter(router fiber.Router) {
	router.Post("/request", buildPassengerRequest)
}

func buildPassengerRequest(c *fiber.Ctx) error {
	var body passengerRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not parse request body",
		})
	}

	var passengers []passenger.Passenger
	for _, item := range body.Passengers {
		kind, err := passenger.ParseKind(item.Type)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if item.Count == nil {
			passengers = append(passengers, passenger.One(kind))
		} else {
			passengers = append(passengers, passenger.Of(kind, *item.Count))
		}
	}

	params, err := passenger.BuildRequest(passengers, passenger.SeatPreference{
		Special: body.Special,
		Window:  codetables.WindowSeat(body.Window),
	})
	if errors.Is(err, passenger.ErrInvalidArgument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(params)
}
