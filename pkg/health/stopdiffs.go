package health

import (
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"golang.org/x/exp/slices"
)

// StopDiff is the observed-versus-planned difference at one stop along a
// journey, classified for display.
type StopDiff struct {
	StopID string       `groups:"basic" json:"stopId"`
	Index  int          `groups:"basic" json:"index"`
	Role   hfp.StopRole `groups:"basic" json:"role"`

	PlannedTime  time.Time  `groups:"basic" json:"plannedTime"`
	ObservedTime *time.Time `groups:"basic" json:"observedTime,omitempty" bson:",omitempty"`

	DiffSeconds *int      `groups:"basic" json:"diffSeconds,omitempty" bson:",omitempty"`
	DelayType   DelayType `groups:"basic" json:"delayType"`
}

// JourneyStopDiffs computes the signed delay at every planned stop visit.
// Departures are compared against departure-type events, the final stop
// against arrivals. Stops with no usable observation get a nil diff and an
// unsigned classification, which is distinct from being exactly on time.
func JourneyStopDiffs(journey *hfp.Journey) []StopDiff {
	departures := journey.OrderedDepartures()
	departureTypes := DepartureEventTypes(journey.Events)

	diffs := make([]StopDiff, 0, len(departures))

	for i, departure := range departures {
		role := hfp.StopRole(hfp.StopRoleIntermediate)
		acceptedTypes := departureTypes
		plannedTime := departure.PlannedDepartureTime

		switch i {
		case 0:
			role = hfp.StopRoleOrigin
		case len(departures) - 1:
			role = hfp.StopRoleDestination
			acceptedTypes = arrivalEventTypes
			plannedTime = departure.PlannedArrivalTime
		}

		diff := StopDiff{
			StopID:      departure.StopID,
			Index:       departure.Index,
			Role:        role,
			PlannedTime: plannedTime,
		}

		if observed := pickObservedEvent(journey.Events, departure.StopID, acceptedTypes); observed != nil {
			observedTime := observed.RecordedAt
			diffSeconds := int(observedTime.Sub(plannedTime).Seconds())

			diff.ObservedTime = &observedTime
			diff.DiffSeconds = &diffSeconds
		}

		diff.DelayType = ClassifyDelay(diff.DiffSeconds, role)

		diffs = append(diffs, diff)
	}

	return diffs
}

// pickObservedEvent selects the highest-confidence event of the accepted
// types at a stop, preferring trusted events over virtual ones and earlier
// recordings on equal confidence.
func pickObservedEvent(events []hfp.JourneyEvent, stopID string, acceptedTypes []hfp.EventType) *hfp.JourneyEvent {
	var best *hfp.JourneyEvent

	for i := range events {
		event := &events[i]

		if event.StopID != stopID || !slices.Contains(acceptedTypes, event.Type) {
			continue
		}

		if best == nil {
			best = event
			continue
		}

		if EventScore(*event) > EventScore(*best) {
			best = event
			continue
		}

		if EventScore(*event) == EventScore(*best) && event.RecordedAtUnix < best.RecordedAtUnix {
			best = event
		}
	}

	return best
}
