package health

import (
	"fmt"
	"sort"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/i18n"
	"golang.org/x/exp/slices"
)

// Every check returns an immutable result; the aggregator combines them. No
// check shares state with another.
type checkResult struct {
	points   float64
	max      float64
	pending  bool
	messages []string
}

const (
	maxPositionGapSeconds = 5
	positionGapPenalty    = 2
	missingGroupPenalty   = 4
)

// checkPositionContinuity walks the position samples recorded between the
// journey's first and last event and scores every consecutive pair. A gap
// above five seconds costs twice its length in points, so a single long
// dropout weighs much more than the sample it replaced.
func checkPositionContinuity(positions []hfp.VehiclePosition, events []hfp.JourneyEvent, language string) checkResult {
	result := checkResult{}

	var windowStart, windowEnd int64
	for i, event := range events {
		if i == 0 || event.RecordedAtUnix < windowStart {
			windowStart = event.RecordedAtUnix
		}
		if event.RecordedAtUnix > windowEnd {
			windowEnd = event.RecordedAtUnix
		}
	}

	ordered := make([]hfp.VehiclePosition, 0, len(positions))
	for _, position := range positions {
		if len(events) == 0 || (position.RecordedAtUnix >= windowStart && position.RecordedAtUnix <= windowEnd) {
			ordered = append(ordered, position)
		}
	}

	sort.Slice(ordered, func(a, b int) bool {
		return ordered[a].RecordedAtUnix < ordered[b].RecordedAtUnix
	})

	for i := 1; i < len(ordered); i++ {
		gap := ordered[i].RecordedAtUnix - ordered[i-1].RecordedAtUnix

		result.max++

		if gap <= maxPositionGapSeconds {
			result.points++
		} else {
			result.points -= float64(positionGapPenalty * gap)
			result.messages = append(result.messages,
				fmt.Sprintf(i18n.Text(language, "journey.health.position_gap"), gap))
		}
	}

	return result
}

// checkStopEvents reconciles every visited stop against its expectation slots
// and scores the matches. Missing slots cost extra on top of earning nothing.
func checkStopEvents(stopEvents []hfp.JourneyEvent, visitedStops []hfp.Departure, finalStopIndex int, language string) checkResult {
	result := checkResult{}

	for _, departure := range visitedStops {
		groups := StopEventGroups(departure.Index == finalStopIndex)

		matched, missing := FindStopEvents(stopEvents, departure.StopID, groups)

		for _, event := range matched {
			result.points += float64(EventScore(event))
		}

		result.points -= float64(missingGroupPenalty * len(missing))
		result.max += float64(2 * len(groups))

		for _, group := range missing {
			result.messages = append(result.messages,
				fmt.Sprintf(i18n.Text(language, "journey.health.missing_stop_event"), group.String(), departure.StopID))
		}
	}

	return result
}

// bestStopEvent returns the highest-confidence event of the accepted types at
// a stop: 2 for a trusted event, 1 for a virtual-only one, 0 when absent.
func bestStopEvent(events []hfp.JourneyEvent, stopID string, acceptedTypes []hfp.EventType) int {
	best := 0

	for _, event := range events {
		if event.StopID != stopID || !slices.Contains(acceptedTypes, event.Type) {
			continue
		}

		if score := EventScore(event); score > best {
			best = score
		}
	}

	return best
}

// checkFirstStopDeparture verifies the journey actually signed off a
// departure at its origin stop.
func checkFirstStopDeparture(events []hfp.JourneyEvent, origin hfp.Departure, departureTypes []hfp.EventType, language string) checkResult {
	result := checkResult{max: 100}

	switch bestStopEvent(events, origin.StopID, departureTypes) {
	case 2:
		result.points = 100
	case 1:
		result.points = 50
		result.messages = append(result.messages,
			fmt.Sprintf(i18n.Text(language, "journey.health.virtual_departure"), origin.StopID))
	default:
		result.points = 0
		result.messages = append(result.messages,
			fmt.Sprintf(i18n.Text(language, "journey.health.missing_departure"), origin.StopID))
	}

	return result
}

var arrivalEventTypes = []hfp.EventType{hfp.EventTypeArrival, hfp.EventTypeArrivedToStop}

// checkLastStopArrival is only judged once the journey has concluded; before
// that the arrival simply hasn't happened yet.
func checkLastStopArrival(events []hfp.JourneyEvent, destination hfp.Departure, isDone bool, language string) checkResult {
	if !isDone {
		return checkResult{pending: true}
	}

	result := checkResult{max: 100}

	switch bestStopEvent(events, destination.StopID, arrivalEventTypes) {
	case 2:
		result.points = 100
	case 1:
		result.points = 50
		result.messages = append(result.messages,
			fmt.Sprintf(i18n.Text(language, "journey.health.virtual_arrival"), destination.StopID))
	default:
		result.points = 0
		result.messages = append(result.messages,
			fmt.Sprintf(i18n.Text(language, "journey.health.missing_arrival"), destination.StopID))
	}

	return result
}

// checkTimingStopDepartures scores departures from operationally enforced
// timing stops. Vacuously satisfied when the journey has none, pending until
// the journey is over.
func checkTimingStopDepartures(events []hfp.JourneyEvent, departures []hfp.Departure, departureTypes []hfp.EventType, isDone bool, language string) checkResult {
	var timingStops []hfp.Departure
	for _, departure := range departures {
		if departure.IsTimingStop {
			timingStops = append(timingStops, departure)
		}
	}

	if len(timingStops) == 0 {
		return checkResult{points: 100, max: 100}
	}

	if !isDone {
		return checkResult{pending: true}
	}

	result := checkResult{}

	for _, stop := range timingStops {
		score := bestStopEvent(events, stop.StopID, departureTypes)

		result.points += float64(score)
		result.max += 2

		switch score {
		case 1:
			result.messages = append(result.messages,
				fmt.Sprintf(i18n.Text(language, "journey.health.virtual_timing_stop_departure"), stop.StopID))
		case 0:
			result.messages = append(result.messages,
				fmt.Sprintf(i18n.Text(language, "journey.health.missing_timing_stop_departure"), stop.StopID))
		}
	}

	return result
}

// checkLocationSources scores how much of the event stream was located by
// odometer rather than GPS. PDE events standing in for a signed-off departure
// are left out, they were already accepted as a substitute.
func checkLocationSources(events []hfp.JourneyEvent, language string) checkResult {
	odometerSubstitution := HasOdometerDeparture(events)

	total := 0
	odometer := 0

	for _, event := range events {
		if odometerSubstitution && event.Type == hfp.EventTypePlannedDeparture && event.Loc == hfp.LocationSourceOdometer {
			continue
		}

		total++

		if event.Loc == hfp.LocationSourceOdometer {
			odometer++
		}
	}

	if total == 0 {
		return checkResult{pending: true}
	}

	odometerPercentage := int(float64(odometer)/float64(total)*100 + 0.5)

	result := checkResult{
		points: float64(100 - odometerPercentage),
		max:    100,
	}

	if odometerPercentage > 0 {
		result.messages = append(result.messages,
			fmt.Sprintf(i18n.Text(language, "journey.health.odometer_share"), odometerPercentage))
	}

	return result
}

// checkDoorSensor is a binary checklist item: did the vehicle report any door
// activity at all during the journey.
func checkDoorSensor(events []hfp.JourneyEvent, language string) ChecklistItem {
	if len(events) == 0 {
		return ChecklistItem{Status: ChecklistStatusPending, Messages: []string{}}
	}

	for _, event := range events {
		if event.IsDoorEvent() {
			return ChecklistItem{Status: ChecklistStatusPassed, Messages: []string{}}
		}
	}

	return ChecklistItem{
		Status:   ChecklistStatusUnavailable,
		Messages: []string{i18n.Text(language, "journey.health.no_door_events")},
	}
}

// checkGPS is a binary checklist item: did any position sample carry usable
// coordinates.
func checkGPS(positions []hfp.VehiclePosition, language string) ChecklistItem {
	if len(positions) == 0 {
		return ChecklistItem{Status: ChecklistStatusPending, Messages: []string{}}
	}

	for _, position := range positions {
		if position.HasCoordinates() {
			return ChecklistItem{Status: ChecklistStatusPassed, Messages: []string{}}
		}
	}

	return ChecklistItem{
		Status:   ChecklistStatusFailed,
		Messages: []string{i18n.Text(language, "journey.health.no_gps_coordinates")},
	}
}
