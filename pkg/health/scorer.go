package health

import (
	"math"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/util"
	"golang.org/x/exp/slices"
)

// Stops whose planned departure is this close to now count as visited even
// though the vehicle may not have reached them yet.
const visitedStopWindow = 5 * time.Minute

// EvaluateJourney runs the full battery of health checks over one journey and
// aggregates them into a report. It is a pure function of its arguments: no
// I/O, no mutation of the journey, and missing data always degrades to lower
// scores or pending states instead of failing.
func EvaluateJourney(journey *hfp.Journey, language string, now time.Time) *Report {
	departures := journey.OrderedDepartures()

	lastArrival := journey.LastPlannedArrival()
	isDone := !lastArrival.IsZero() && now.After(lastArrival)

	if len(departures) == 0 || (len(journey.Events) == 0 && len(journey.VehiclePositions) == 0) {
		return emptyReport(isDone)
	}

	// Events from stops the vehicle hasn't reached yet are not expected and
	// must not be penalized.
	visitedStops := departures
	if !isDone {
		visitedStops = make([]hfp.Departure, len(departures))
		copy(visitedStops, departures)

		windowEnd := now.Add(visitedStopWindow)
		util.InPlaceFilter(&visitedStops, func(departure hfp.Departure) bool {
			return departure.PlannedDepartureTime.Before(windowEnd)
		})
	}

	vocabulary := StopEventVocabulary()

	var stopEvents []hfp.JourneyEvent
	for _, event := range journey.Events {
		if slices.Contains(vocabulary, event.Type) {
			stopEvents = append(stopEvents, event)
		}
	}

	departureTypes := DepartureEventTypes(journey.Events)

	origin := departures[0]
	destination := departures[len(departures)-1]

	report := emptyReport(isDone)

	report.Health[CriterionPositions] = newScore(
		checkPositionContinuity(journey.VehiclePositions, journey.Events, language), DefaultThresholds)
	report.Health[CriterionStops] = newScore(
		checkStopEvents(stopEvents, visitedStops, destination.Index, language), DefaultThresholds)
	report.Health[CriterionFirstStopDeparture] = newScore(
		checkFirstStopDeparture(stopEvents, origin, departureTypes, language), DefaultThresholds)
	report.Health[CriterionLastStopArrival] = newScore(
		checkLastStopArrival(stopEvents, destination, isDone, language), DefaultThresholds)
	report.Health[CriterionTimingStopDepartures] = newScore(
		checkTimingStopDepartures(stopEvents, departures, departureTypes, isDone, language), DefaultThresholds)
	report.Health[CriterionLocType] = newScore(
		checkLocationSources(journey.Events, language), LocTypeThresholds)

	report.Checklist[ChecklistDoors] = checkDoorSensor(journey.Events, language)
	report.Checklist[ChecklistGPS] = checkGPS(journey.VehiclePositions, language)

	report.Total, report.IsOK = aggregate(report.Health, report.Checklist)

	return report
}

func newScore(result checkResult, thresholds Thresholds) Score {
	messages := result.messages
	if messages == nil {
		messages = []string{}
	}

	return Score{
		Health:     healthPercentage(result),
		Messages:   messages,
		Thresholds: thresholds,
	}
}

// healthPercentage normalizes raw check points into 0-100. A check with
// nothing to judge yet (pending, or no possible points) stays pending.
func healthPercentage(result checkResult) int {
	if result.pending || result.max == 0 {
		return HealthPending
	}

	percentage := int(math.Round(result.points / result.max * 100))

	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}

	return percentage
}

// aggregate folds every non-pending criterion into the overall score. A
// single criterion at exactly zero forces the whole total to zero: one total
// failure invalidates the journey's data trustworthiness rather than being
// averaged away.
func aggregate(healthScores map[string]Score, checklist map[string]ChecklistItem) (total int, isOK bool) {
	var values []int
	anyZero := false
	anyFailed := false
	belowWarning := false

	for _, score := range healthScores {
		if score.Health == HealthPending {
			continue
		}

		values = append(values, score.Health)

		if score.Health == 0 {
			anyZero = true
		}
		if score.Health < score.Thresholds.Warning {
			belowWarning = true
		}
	}

	for _, item := range checklist {
		if item.Status == ChecklistStatusPending {
			continue
		}

		value := 0
		if item.Status == ChecklistStatusPassed {
			value = 100
		}

		values = append(values, value)

		if value == 0 {
			anyZero = true
		}
		if item.Status == ChecklistStatusFailed {
			anyFailed = true
		}
	}

	if len(values) == 0 {
		return 0, false
	}

	sum := 0
	for _, value := range values {
		sum += value
	}

	total = int(math.Round(float64(sum) / float64(len(values))))

	if anyZero {
		total = 0
	}

	isOK = total > 0 && !anyFailed && !belowWarning

	return total, isOK
}
