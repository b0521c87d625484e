package calculator

import (
	"context"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
)

type RecordStatsData struct {
	Type      string `json:"-"`
	Stats     interface{}
	Timestamp time.Time
}

func RecordStats(statsType string, stats interface{}) error {
	statsCollection := database.GetCollection("stats")

	_, err := statsCollection.InsertOne(context.Background(), RecordStatsData{
		Type:      statsType,
		Stats:     stats,
		Timestamp: time.Now(),
	})

	return err
}
