package api

import (
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/api/routes"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/reportcache"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string, reports *reportcache.ReportCache) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/health")

	group.Get("version", routes.APIVersion)

	routes.JourneysRouter(group.Group("/journeys"), reports)

	return webApp.Listen(listen)
}
