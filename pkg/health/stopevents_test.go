package health

import (
	"testing"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stopEvent(eventType hfp.EventType, stopID string, loc hfp.LocationSource, virtual bool) hfp.JourneyEvent {
	return hfp.JourneyEvent{
		Type:      eventType,
		StopID:    stopID,
		Loc:       loc,
		IsVirtual: virtual,
	}
}

func TestFindStopEvents(t *testing.T) {
	t.Run("first match wins within an alias group", func(t *testing.T) {
		events := []hfp.JourneyEvent{
			stopEvent(hfp.EventTypeDeparture, "1001", hfp.LocationSourceGPS, false),
			stopEvent(hfp.EventTypeArrival, "1001", hfp.LocationSourceGPS, false),
			stopEvent(hfp.EventTypeArrivedToStop, "1001", hfp.LocationSourceGPS, false),
			stopEvent(hfp.EventTypePassBy, "1001", hfp.LocationSourceGPS, false),
		}

		matched, missing := FindStopEvents(events, "1001", StopEventGroups(false))

		require.Len(t, matched, 4)
		assert.Empty(t, missing)
		assert.Equal(t, hfp.EventType(hfp.EventTypeDeparture), matched[0].Type)
		assert.Equal(t, hfp.EventType(hfp.EventTypePassBy), matched[1].Type)
		assert.Equal(t, hfp.EventType(hfp.EventTypeArrival), matched[2].Type)
		assert.Equal(t, hfp.EventType(hfp.EventTypeArrivedToStop), matched[3].Type)
	})

	t.Run("events at other stops never match", func(t *testing.T) {
		events := []hfp.JourneyEvent{
			stopEvent(hfp.EventTypeDeparture, "2002", hfp.LocationSourceGPS, false),
		}

		matched, missing := FindStopEvents(events, "1001", StopEventGroups(false))

		assert.Empty(t, matched)
		assert.Len(t, missing, 4)
	})

	t.Run("missing groups are reported for diagnostics", func(t *testing.T) {
		events := []hfp.JourneyEvent{
			stopEvent(hfp.EventTypeDeparture, "1001", hfp.LocationSourceGPS, false),
		}

		matched, missing := FindStopEvents(events, "1001", StopEventGroups(false))

		require.Len(t, matched, 1)
		require.Len(t, missing, 3)
		assert.Equal(t, "PDE/PAS", missing[0].String())
	})

	t.Run("the terminus only expects arrivals", func(t *testing.T) {
		events := []hfp.JourneyEvent{
			stopEvent(hfp.EventTypeArrival, "9999", hfp.LocationSourceGPS, false),
			stopEvent(hfp.EventTypeArrivedToStop, "9999", hfp.LocationSourceGPS, false),
		}

		matched, missing := FindStopEvents(events, "9999", StopEventGroups(true))

		assert.Len(t, matched, 2)
		assert.Empty(t, missing)
	})
}

func TestEventScore(t *testing.T) {
	t.Run("directly observed events earn full credit", func(t *testing.T) {
		assert.Equal(t, 2, EventScore(stopEvent(hfp.EventTypeDeparture, "1001", hfp.LocationSourceGPS, false)))
	})

	t.Run("manually verified virtual events earn full credit", func(t *testing.T) {
		assert.Equal(t, 2, EventScore(stopEvent(hfp.EventTypeDeparture, "1001", hfp.LocationSourceManual, true)))
	})

	t.Run("unverified virtual events earn half credit", func(t *testing.T) {
		assert.Equal(t, 1, EventScore(stopEvent(hfp.EventTypeDeparture, "1001", hfp.LocationSourceGPS, true)))
	})
}

func TestDepartureEventTypes(t *testing.T) {
	t.Run("only DEP counts without odometer substitution", func(t *testing.T) {
		events := []hfp.JourneyEvent{
			stopEvent(hfp.EventTypePlannedDeparture, "1001", hfp.LocationSourceGPS, false),
		}

		assert.Equal(t, []hfp.EventType{hfp.EventTypeDeparture}, DepartureEventTypes(events))
	})

	t.Run("an odometer PDE widens the accepted departure types", func(t *testing.T) {
		events := []hfp.JourneyEvent{
			stopEvent(hfp.EventTypePlannedDeparture, "1001", hfp.LocationSourceOdometer, false),
		}

		assert.Equal(t, []hfp.EventType{hfp.EventTypeDeparture, hfp.EventTypePlannedDeparture}, DepartureEventTypes(events))
	})
}

func TestStopEventVocabulary(t *testing.T) {
	vocabulary := StopEventVocabulary()

	assert.ElementsMatch(t, []hfp.EventType{
		hfp.EventTypePlannedDeparture,
		hfp.EventTypeDeparture,
		hfp.EventTypePassBy,
		hfp.EventTypeArrival,
		hfp.EventTypeArrivedToStop,
	}, vocabulary)
}
