package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/srt/pkg/reservation"
)

func ReservationsRouter(router fiber.Router) {
	router.Post("/decode", decodeReservation)
}

func decodeReservation(c *fiber.Ctx) error {
	var raw reservation.RawReservation
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not parse request body",
		})
	}

	decoded, err := reservation.DecodeRaw(raw)
	if err != nil {
		return decodeFailure(c, err)
	}

	options := &sheriff.Options{
		Groups: detailGroups(c),
	}

	reservationReduced, err := sheriff.Marshal(options, decoded)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Sherrif could not reduce Reservation",
		})
	}

	ticketsReduced, err := sheriff.Marshal(options, decoded.Tickets())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Sherrif could not reduce Tickets",
		})
	}

	return c.JSON(fiber.Map{
		"reservation": reservationReduced,
		"tickets":     ticketsReduced,
		"summary":     decoded.String(),
	})
}
