package api

import (
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/redis_client"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/reportcache"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey health web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					reports := &reportcache.ReportCache{}
					reports.Setup()

					return SetupServer(c.String("listen"), reports)
				},
			},
		},
	}
}
