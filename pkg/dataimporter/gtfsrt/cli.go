package gtfsrt

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Imports external realtime data",
		Subcommands: []*cli.Command{
			{
				Name:  "gtfs-rt",
				Usage: "merge vehicle positions from a GTFS-RT feed into stored journeys",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Usage:    "url of the GTFS-RT feed",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					response, err := http.Get(c.String("url"))
					if err != nil {
						return err
					}
					defer response.Body.Close()

					feedBody, err := io.ReadAll(response.Body)
					if err != nil {
						return err
					}

					samples, err := ExtractVehiclePositions(feedBody, time.Now())
					if err != nil {
						return err
					}

					journeysCollection := database.GetCollection("journeys")
					updated := 0

					for journeyID, journeySamples := range samples {
						result, err := journeysCollection.UpdateOne(context.Background(),
							bson.M{"primaryidentifier": journeyID},
							bson.M{"$push": bson.M{"vehiclepositions": bson.M{"$each": journeySamples}}})

						if err != nil {
							log.Error().Err(err).Str("journey", journeyID).Msg("Failed to merge vehicle positions")
							continue
						}

						updated += int(result.ModifiedCount)
					}

					log.Info().
						Int("journeys", len(samples)).
						Int("updated", updated).
						Msg("Imported GTFS-RT vehicle positions")

					return nil
				},
			},
		},
	}
}
