package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/srt/pkg/api/routes"
)

func NewApp() *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PassengersRouter(group.Group("/passengers"))
	routes.TicketsRouter(group.Group("/tickets"))
	routes.ReservationsRouter(group.Group("/reservations"))
	routes.CodesRouter(group.Group("/codes"))

	return webApp
}

func SetupServer(listen string) error {
	return NewApp().Listen(listen)
}
