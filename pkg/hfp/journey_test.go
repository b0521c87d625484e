package hfp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	journey := Journey{
		RouteID:       "1018",
		DirectionID:   1,
		DepartureDate: "2025-09-01",
		DepartureTime: "08:00",
	}

	assert.Equal(t, "JOURNEY:1018:1:2025-09-01:08:00", journey.GenerateID())
}

func TestOrderedDepartures(t *testing.T) {
	journey := Journey{
		Departures: []Departure{
			{StopID: "3", Index: 3},
			{StopID: "1", Index: 1},
			{StopID: "2", Index: 2},
		},
	}

	ordered := journey.OrderedDepartures()

	require.Len(t, ordered, 3)
	assert.Equal(t, "1", ordered[0].StopID)
	assert.Equal(t, "2", ordered[1].StopID)
	assert.Equal(t, "3", ordered[2].StopID)

	// The journey's own slice keeps its order.
	assert.Equal(t, "3", journey.Departures[0].StopID)
}

func TestCivilDepartureTime(t *testing.T) {
	day := Journey{DepartureTime: "08:00"}
	assert.Equal(t, "08:00:00", day.CivilDepartureTime())
	assert.False(t, day.IsNightJourney())

	night := Journey{DepartureTime: "26:15"}
	assert.Equal(t, "02:15:00", night.CivilDepartureTime())
	assert.True(t, night.IsNightJourney())
}

func TestLastPlannedArrival(t *testing.T) {
	t.Run("no planned stops", func(t *testing.T) {
		journey := Journey{}

		assert.True(t, journey.LastPlannedArrival().IsZero())
	})

	t.Run("highest index wins regardless of slice order", func(t *testing.T) {
		last := time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)

		journey := Journey{
			Departures: []Departure{
				{Index: 2, PlannedArrivalTime: last},
				{Index: 1, PlannedArrivalTime: time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)},
			},
		}

		assert.Equal(t, last, journey.LastPlannedArrival())
	})
}

func TestGenerateFunctionalHash(t *testing.T) {
	journey := Journey{
		RouteID:       "1018",
		DirectionID:   1,
		DepartureDate: "2025-09-01",
		DepartureTime: "08:00",
		Events: []JourneyEvent{
			{Type: EventTypeDeparture, StopID: "1001", Loc: LocationSourceGPS, RecordedAtUnix: 1756713605},
		},
	}

	identical := journey
	assert.Equal(t, journey.GenerateFunctionalHash(), identical.GenerateFunctionalHash())

	changed := journey
	changed.Events = []JourneyEvent{
		{Type: EventTypeDeparture, StopID: "1001", Loc: LocationSourceGPS, RecordedAtUnix: 1756713605, IsVirtual: true},
	}
	assert.NotEqual(t, journey.GenerateFunctionalHash(), changed.GenerateFunctionalHash())

	// The door sensor check reads DoorsOpened, so a newly reported door flag
	// must produce a new hash or a stale cached report would be served.
	opened := true
	withDoors := journey
	withDoors.Events = []JourneyEvent{
		{Type: EventTypeDeparture, StopID: "1001", Loc: LocationSourceGPS, RecordedAtUnix: 1756713605, DoorsOpened: &opened},
	}
	assert.NotEqual(t, journey.GenerateFunctionalHash(), withDoors.GenerateFunctionalHash())

	notOpened := false
	withDoorsShut := journey
	withDoorsShut.Events = []JourneyEvent{
		{Type: EventTypeDeparture, StopID: "1001", Loc: LocationSourceGPS, RecordedAtUnix: 1756713605, DoorsOpened: &notOpened},
	}
	assert.NotEqual(t, withDoors.GenerateFunctionalHash(), withDoorsShut.GenerateFunctionalHash())
}

func TestEventTrusted(t *testing.T) {
	trusted := JourneyEvent{Type: EventTypeDeparture, Loc: LocationSourceGPS}
	assert.True(t, trusted.Trusted())

	virtual := JourneyEvent{Type: EventTypeDeparture, Loc: LocationSourceGPS, IsVirtual: true}
	assert.False(t, virtual.Trusted())

	manuallyVerified := JourneyEvent{Type: EventTypeDeparture, Loc: LocationSourceManual, IsVirtual: true}
	assert.True(t, manuallyVerified.Trusted())
}

func TestIsDoorEvent(t *testing.T) {
	doorsOpen := JourneyEvent{Type: EventTypeDoorsOpen}
	assert.True(t, doorsOpen.IsDoorEvent())

	doorsClose := JourneyEvent{Type: EventType(EventTypeDoorsClose)}
	assert.True(t, doorsClose.IsDoorEvent())

	opened := true
	departureWithDoors := JourneyEvent{Type: EventType(EventTypeDeparture), DoorsOpened: &opened}
	assert.True(t, departureWithDoors.IsDoorEvent())

	notOpened := false
	plainDeparture := JourneyEvent{Type: EventType(EventTypeDeparture), DoorsOpened: &notOpened}
	assert.False(t, plainDeparture.IsDoorEvent())
}
