package calculator

import (
	"context"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/health"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson"
)

type JourneyHealthStats struct {
	TotalJourneys int
	DoneJourneys  int
	OKJourneys    int

	HealthyShare float64

	// Journeys bucketed by total score against the default thresholds.
	Bands map[string]int

	// How often each criterion scored exactly zero, and how often each
	// checklist item failed outright.
	CriterionFailures map[string]int
}

// GetJourneyHealth re-evaluates every report archived inside the window and
// aggregates fleet-wide data quality figures. Each journey's evaluation is
// independent, so they run concurrently.
func GetJourneyHealth(evaluatedSince time.Time) JourneyHealthStats {
	healthReportsCollection := database.GetCollection("health_reports")

	cursor, _ := healthReportsCollection.Find(context.Background(),
		bson.M{"evaluatedat": bson.M{"$gt": evaluatedSince}})

	var archivedReports []health.ArchivedJourneyHealth
	if err := cursor.All(context.Background(), &archivedReports); err != nil {
		log.Error().Err(err).Msg("Failed to decode archived journey health reports")
	}

	now := time.Now()

	p := pool.NewWithResults[*health.Report]()
	p.WithMaxGoroutines(200)

	for _, archived := range archivedReports {
		p.Go(func() *health.Report {
			// A journey can conclude between evaluations, which settles its
			// pending criteria, so score it again rather than trusting the
			// archived numbers.
			return health.EvaluateJourney(&archived.Journey, archived.Language, now)
		})
	}

	reports := p.Wait()

	stats := JourneyHealthStats{
		Bands:             map[string]int{},
		CriterionFailures: map[string]int{},
	}

	for _, report := range reports {
		stats.TotalJourneys++

		if report.IsDone {
			stats.DoneJourneys++
		}
		if report.IsOK {
			stats.OKJourneys++
		}

		switch {
		case report.Total >= health.DefaultThresholds.OK:
			stats.Bands["good"]++
		case report.Total >= health.DefaultThresholds.Warning:
			stats.Bands["warning"]++
		default:
			stats.Bands["bad"]++
		}

		for criterion, score := range report.Health {
			if score.Health == 0 {
				stats.CriterionFailures[criterion]++
			}
		}
		for item, checklistItem := range report.Checklist {
			if checklistItem.Status == health.ChecklistStatusFailed {
				stats.CriterionFailures[item]++
			}
		}
	}

	if stats.TotalJourneys > 0 {
		stats.HealthyShare = float64(stats.OKJourneys) / float64(stats.TotalJourneys)
	}

	return stats
}
