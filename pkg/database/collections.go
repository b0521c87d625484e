package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createJourneysIndexes()
	createHealthReportsIndexes()
}

func createJourneysIndexes() {
	journeysCollection := GetCollection("journeys")
	journeysIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "departuredate", Value: 1}, {Key: "routeid", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := journeysCollection.Indexes().CreateMany(context.Background(), journeysIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createHealthReportsIndexes() {
	healthReportsCollection := GetCollection("health_reports")
	healthReportsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "journeyidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "evaluatedat", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "report.total", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := healthReportsCollection.Indexes().CreateMany(context.Background(), healthReportsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
