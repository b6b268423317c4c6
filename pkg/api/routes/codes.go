package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/srt/pkg/codetables"
)

func CodesRouter(router fiber.Router) {
	router.Get("/", listCodeTables)
	router.Get("/:table", getCodeTable)
}

func listCodeTables(c *fiber.Ctx) error {
	return c.JSON(codetables.Tables)
}

func getCodeTable(c *fiber.Ctx) error {
	entries, err := codetables.List(codetables.Table(c.Params("table")))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entries)
}
