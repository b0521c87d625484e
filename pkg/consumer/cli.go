package consumer

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/database"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/elastic_client"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/redis_client"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/reportcache"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const journeyHealthQueue = "journey-health"

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "consumer",
		Usage: "Consumes journeys off the queue and archives their health reports",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the journey health consumer",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "consumers",
						Value: 5,
						Usage: "number of queue consumers",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Value: 200,
						Usage: "maximum deliveries handled per batch",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(false); err != nil {
						return err
					}

					reports := &reportcache.ReportCache{}
					reports.Setup()

					redisConsumer := RedisConsumer{
						QueueName: journeyHealthQueue,

						NumberConsumers: c.Int("consumers"),
						BatchSize:       c.Int("batch-size"),

						Timeout: 2 * time.Second,

						Consumer: NewHealthBatchConsumer(0, reports),
					}
					redisConsumer.Setup()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					<-signals

					log.Info().Msg("Stopping consumers")
					<-redis_client.QueueConnection.StopAllConsuming()

					// Flush whatever the bulk indexer is still holding
					// before the process goes away.
					elastic_client.WaitUntilQueueEmpty()

					return nil
				},
			},
		},
	}
}
