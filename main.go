package main

import (
	"os"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/api"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/consumer"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/dataimporter/gtfsrt"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/health"
	statscli "github.com/HSLdevcom/transitlog-ui-sub000/pkg/stats/cli"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRANSITLOG_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRANSITLOG_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "transitlog",
		Description: "Journey health scoring for realtime transit telemetry - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			consumer.RegisterCLI(),
			statscli.RegisterCLI(),
			health.RegisterCLI(),
			gtfsrt.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
