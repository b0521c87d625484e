package health

import (
	"strings"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"golang.org/x/exp/slices"
)

// EventAliasGroup is one expectation slot for a stop: a list of event types
// where any one of them satisfies the slot, evaluated first-match-wins.
type EventAliasGroup []hfp.EventType

func (g EventAliasGroup) String() string {
	var names []string
	for _, eventType := range g {
		names = append(names, string(eventType))
	}

	return strings.Join(names, "/")
}

// At a normal stop we expect a signed-off or odometer-estimated departure, a
// pass-by fallback, and both arrival variants. The terminus only ever gets
// arrivals as nothing departs from it.
var intermediateStopGroups = []EventAliasGroup{
	{hfp.EventTypePlannedDeparture, hfp.EventTypeDeparture},
	{hfp.EventTypePlannedDeparture, hfp.EventTypePassBy},
	{hfp.EventTypeArrival},
	{hfp.EventTypeArrivedToStop, hfp.EventTypePassBy},
}

var finalStopGroups = []EventAliasGroup{
	{hfp.EventTypeArrival},
	{hfp.EventTypeArrivedToStop},
}

// StopEventGroups returns the expectation slots for a stop depending on
// whether it is the journey's final one.
func StopEventGroups(isFinalStop bool) []EventAliasGroup {
	if isFinalStop {
		return finalStopGroups
	}

	return intermediateStopGroups
}

// StopEventVocabulary is the flattened set of event types that ever appear in
// an expectation slot; anything outside it is a non-stop event.
func StopEventVocabulary() []hfp.EventType {
	var vocabulary []hfp.EventType

	for _, group := range append(intermediateStopGroups, finalStopGroups...) {
		for _, eventType := range group {
			if !slices.Contains(vocabulary, eventType) {
				vocabulary = append(vocabulary, eventType)
			}
		}
	}

	return vocabulary
}

// FindStopEvents reconciles the recorded events at one stop against the
// expectation slots. Each slot yields at most one matched event; slots with
// no acceptable event are returned separately for diagnostics.
func FindStopEvents(events []hfp.JourneyEvent, stopID string, groups []EventAliasGroup) (matched []hfp.JourneyEvent, missing []EventAliasGroup) {
	var stopEvents []hfp.JourneyEvent
	for _, event := range events {
		if event.StopID == stopID {
			stopEvents = append(stopEvents, event)
		}
	}

	for _, group := range groups {
		found := false

		for _, event := range stopEvents {
			if slices.Contains(group, event.Type) {
				matched = append(matched, event)
				found = true
				break
			}
		}

		if !found {
			missing = append(missing, group)
		}
	}

	return matched, missing
}

// EventScore awards full credit for directly observed or manually verified
// events and half credit for interpolated ones, which are real signal but
// lower confidence.
func EventScore(event hfp.JourneyEvent) int {
	if event.Trusted() {
		return 2
	}

	return 1
}

// HasOdometerDeparture reports whether any planned-departure estimate on the
// journey was triggered by the odometer. When one exists, PDE events stand in
// for the signed-off DEP and are left out of the provenance ratio so the same
// events aren't penalized twice.
func HasOdometerDeparture(events []hfp.JourneyEvent) bool {
	for _, event := range events {
		if event.Type == hfp.EventTypePlannedDeparture && event.Loc == hfp.LocationSourceOdometer {
			return true
		}
	}

	return false
}

// DepartureEventTypes returns the event types accepted as proof of departure,
// widened to include PDE when the odometer substitution is in effect.
func DepartureEventTypes(events []hfp.JourneyEvent) []hfp.EventType {
	if HasOdometerDeparture(events) {
		return []hfp.EventType{hfp.EventTypeDeparture, hfp.EventTypePlannedDeparture}
	}

	return []hfp.EventType{hfp.EventTypeDeparture}
}
