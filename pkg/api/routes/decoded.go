package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/srt/pkg/reservation"
)

func detailGroups(c *fiber.Ctx) []string {
	if c.Query("detail") == "basic" {
		return []string{"basic"}
	}

	return []string{"basic", "detailed"}
}

func decodeFailure(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if reservation.IsDecodeError(err) || reservation.IsFormatError(err) {
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
