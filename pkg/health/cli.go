package health

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/i18n"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Journey health evaluation",
		Subcommands: []*cli.Command{
			{
				Name:  "evaluate",
				Usage: "evaluate a journey document from a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to a journey JSON document",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "language",
						Value: i18n.DefaultLanguage,
						Usage: "language for diagnostic messages",
					},
				},
				Action: func(c *cli.Context) error {
					journeyFile, err := os.ReadFile(c.String("file"))
					if err != nil {
						return err
					}

					var journey *hfp.Journey
					if err := json.Unmarshal(journeyFile, &journey); err != nil {
						return err
					}
					if journey == nil {
						return errors.New("journey document is empty")
					}

					report := EvaluateJourney(journey, c.String("language"), time.Now())

					pretty.Println(report)

					return nil
				},
			},
		},
	}
}
