package routes

import (
	"context"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/health"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/i18n"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/reportcache"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"go.mongodb.org/mongo-driver/bson"
)

type JourneysRoutes struct {
	reports *reportcache.ReportCache
}

func JourneysRouter(router fiber.Router, reports *reportcache.ReportCache) {
	routes := &JourneysRoutes{reports: reports}

	router.Post("/evaluate", routes.evaluateJourney)
	router.Get("/:identifier", routes.getJourneyHealth)
	router.Get("/:identifier/stop-diffs", routes.getJourneyStopDiffs)
}

func (r *JourneysRoutes) evaluateJourney(c *fiber.Ctx) error {
	language := c.Query("language", i18n.DefaultLanguage)

	var journey *hfp.Journey
	if err := c.BodyParser(&journey); err != nil || journey == nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not decode journey document",
		})
	}

	var report *health.Report
	if r.reports != nil {
		report = r.reports.Evaluate(journey, language, time.Now())
	} else {
		report = health.EvaluateJourney(journey, language, time.Now())
	}

	return c.JSON(report)
}

func (r *JourneysRoutes) getJourneyHealth(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	var archived *health.ArchivedJourneyHealth
	healthReportsCollection := database.GetCollection("health_reports")
	healthReportsCollection.FindOne(context.Background(), bson.M{"journeyidentifier": identifier}).Decode(&archived)

	if archived == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "No health report for that journey",
		})
	}

	archivedReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, archived)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce ArchivedJourneyHealth",
		})
	}

	return c.JSON(archivedReduced)
}

func (r *JourneysRoutes) getJourneyStopDiffs(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	var archived *health.ArchivedJourneyHealth
	healthReportsCollection := database.GetCollection("health_reports")
	healthReportsCollection.FindOne(context.Background(), bson.M{"journeyidentifier": identifier}).Decode(&archived)

	if archived == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "No health report for that journey",
		})
	}

	stopDiffs := health.JourneyStopDiffs(&archived.Journey)

	stopDiffsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stopDiffs)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce stop diffs",
		})
	}

	return c.JSON(stopDiffsReduced)
}
