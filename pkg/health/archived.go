package health

import (
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
)

// ArchivedJourneyHealth is the persisted result of one journey evaluation,
// written by the queue consumer and served by the web API.
type ArchivedJourneyHealth struct {
	JourneyIdentifier string `groups:"basic"`

	Journey hfp.Journey `groups:"detailed"`
	Report  *Report     `groups:"basic"`

	Language    string    `groups:"internal"`
	EvaluatedAt time.Time `groups:"basic"`
}
