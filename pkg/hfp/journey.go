package hfp

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/util"
)

var JourneyIDFormat = "JOURNEY:%s:%d:%s:%s"

type Journey struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	RouteID       string `groups:"basic" json:"routeId"`
	DirectionID   int    `groups:"basic" json:"direction"`
	DepartureDate string `groups:"basic" json:"departureDate"`
	DepartureTime string `groups:"basic" json:"departureTime"`

	UniqueVehicleID string `groups:"detailed" json:"uniqueVehicleId" bson:",omitempty"`

	Events           []JourneyEvent    `groups:"detailed" json:"events"`
	VehiclePositions []VehiclePosition `groups:"detailed" json:"vehiclePositions"`
	Departures       []Departure       `groups:"detailed" json:"departures"`
}

func (j *Journey) GenerateID() string {
	return fmt.Sprintf(JourneyIDFormat, j.RouteID, j.DirectionID, j.DepartureDate, j.DepartureTime)
}

func (j Journey) MarshalBinary() ([]byte, error) {
	return json.Marshal(j)
}

// CivilDepartureTime renders the service-day departure time on the civil 24h
// clock. Night departures run past midnight on an overflowing clock, so
// "26:15" means 02:15 the next morning.
func (j *Journey) CivilDepartureTime() string {
	return util.NormalTime(j.DepartureTime)
}

// IsNightJourney reports whether the journey departs after midnight on its
// service day.
func (j *Journey) IsNightJourney() bool {
	return util.TimeToSeconds(j.DepartureTime) >= 24*3600
}

// OrderedDepartures returns the planned stop visits sorted by their journey
// index without mutating the journey itself.
func (j *Journey) OrderedDepartures() []Departure {
	departures := make([]Departure, len(j.Departures))
	copy(departures, j.Departures)

	sort.Slice(departures, func(a, b int) bool {
		return departures[a].Index < departures[b].Index
	})

	return departures
}

// LastPlannedArrival returns the planned arrival time at the journey's final
// stop, or the zero time when the journey has no planned stops.
func (j *Journey) LastPlannedArrival() time.Time {
	var last time.Time
	var lastIndex int

	for _, departure := range j.Departures {
		if last.IsZero() || departure.Index > lastIndex {
			last = departure.PlannedArrivalTime
			lastIndex = departure.Index
		}
	}

	return last
}

// GenerateFunctionalHash produces a content hash over everything that affects
// a health evaluation, so identical journey data always maps to the same
// cache entry.
func (j *Journey) GenerateFunctionalHash() string {
	hash := sha256.New()

	hash.Write([]byte(j.RouteID))
	fmt.Fprintf(hash, "%d", j.DirectionID)
	hash.Write([]byte(j.DepartureDate))
	hash.Write([]byte(j.DepartureTime))
	hash.Write([]byte(j.UniqueVehicleID))

	for _, event := range j.Events {
		hash.Write([]byte(event.Type))
		hash.Write([]byte(event.StopID))
		hash.Write([]byte(event.Loc))
		fmt.Fprintf(hash, "%d:%t", event.RecordedAtUnix, event.IsVirtual)

		if event.DoorsOpened == nil {
			hash.Write([]byte("-"))
		} else {
			fmt.Fprintf(hash, "%t", *event.DoorsOpened)
		}
	}

	for _, position := range j.VehiclePositions {
		fmt.Fprintf(hash, "%d:%t", position.RecordedAtUnix, position.HasCoordinates())
	}

	for _, departure := range j.Departures {
		hash.Write([]byte(departure.StopID))
		fmt.Fprintf(hash, "%d:%t", departure.Index, departure.IsTimingStop)
		fmt.Fprintf(hash, "%d:%d", departure.PlannedDepartureTime.Unix(), departure.PlannedArrivalTime.Unix())
	}

	return fmt.Sprintf("%x", hash.Sum(nil))
}
