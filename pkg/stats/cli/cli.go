package cli

import (
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/stats/calculator"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Calculates fleet-wide journey health statistics",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "calculate stats over recently archived reports",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "window",
						Value: 24 * time.Hour,
						Usage: "how far back to include archived reports",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					stats := calculator.GetJourneyHealth(time.Now().Add(-c.Duration("window")))

					log.Info().
						Int("journeys", stats.TotalJourneys).
						Int("ok", stats.OKJourneys).
						Int("done", stats.DoneJourneys).
						Msg("Calculated journey health stats")

					return calculator.RecordStats("journey-health", stats)
				},
			},
		},
	}
}
