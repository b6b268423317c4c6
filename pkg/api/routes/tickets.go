package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/srt/pkg/reservation"
)

func TicketsRouter(router fiber.Router) {
	router.Post("/decode", decodeTicket)
}

func decodeTicket(c *fiber.Ctx) error {
	var raw map[string]string
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not parse request body",
		})
	}

	ticket, err := reservation.DecodeTicket(raw)
	if err != nil {
		return decodeFailure(c, err)
	}

	ticketReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: detailGroups(c),
	}, ticket)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Sherrif could not reduce Ticket",
		})
	}

	return c.JSON(fiber.Map{
		"ticket":  ticketReduced,
		"summary": ticket.String(),
	})
}
