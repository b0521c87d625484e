package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/elastic_client"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/health"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/i18n"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/reportcache"
	"github.com/adjust/rmq/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type healthElasticEvent struct {
	Timestamp time.Time

	JourneyIdentifier string
	RouteID           string
	DepartureTime     string
	IsNightJourney    bool

	Total  int
	IsOK   bool
	IsDone bool
}

type HealthBatchConsumer struct {
	id int

	reports *reportcache.ReportCache
}

func NewHealthBatchConsumer(id int, reports *reportcache.ReportCache) *HealthBatchConsumer {
	return &HealthBatchConsumer{id: id, reports: reports}
}

func (consumer *HealthBatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	var reportOperations []mongo.WriteModel

	for _, payload := range payloads {
		var journey *hfp.Journey
		if err := json.Unmarshal([]byte(payload), &journey); err != nil || journey == nil {
			log.Error().Err(err).Msg("Failed to decode journey payload")
			continue
		}

		if journey.PrimaryIdentifier == "" {
			journey.PrimaryIdentifier = journey.GenerateID()
		}

		report := consumer.reports.Evaluate(journey, i18n.DefaultLanguage, time.Now())

		archived := health.ArchivedJourneyHealth{
			JourneyIdentifier: journey.PrimaryIdentifier,
			Report:            report,
			Language:          i18n.DefaultLanguage,
			EvaluatedAt:       time.Now(),
		}
		if err := copier.CopyWithOption(&archived.Journey, *journey, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
			log.Error().Err(err).Msg("Failed to copy journey into archive document")
			continue
		}

		updateModel := mongo.NewReplaceOneModel()
		updateModel.SetFilter(bson.M{"journeyidentifier": archived.JourneyIdentifier})
		updateModel.SetReplacement(archived)
		updateModel.SetUpsert(true)

		reportOperations = append(reportOperations, updateModel)

		elasticEvent, _ := json.Marshal(healthElasticEvent{
			Timestamp: archived.EvaluatedAt,

			JourneyIdentifier: archived.JourneyIdentifier,
			RouteID:           journey.RouteID,
			DepartureTime:     journey.CivilDepartureTime(),
			IsNightJourney:    journey.IsNightJourney(),

			Total:  report.Total,
			IsOK:   report.IsOK,
			IsDone: report.IsDone,
		})
		elastic_client.IndexRequest("journey-health-events", bytes.NewReader(elasticEvent))
	}

	if len(reportOperations) > 0 {
		healthReportsCollection := database.GetCollection("health_reports")

		startTime := time.Now()
		_, err := healthReportsCollection.BulkWrite(context.Background(), reportOperations, &options.BulkWriteOptions{})
		log.Info().Int("Length", len(reportOperations)).Str("Time", time.Since(startTime).String()).Msg("Bulk write")

		if err != nil {
			log.Fatal().Err(err).Msg("Failed to bulk write journey health reports")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to ack journey health batch")
		}
	}
}
