package hfp

import "time"

// Departure is one planned stop visit within a journey, ordered by Index.
type Departure struct {
	StopID string `groups:"basic" json:"stopId"`
	Index  int    `groups:"basic" json:"index"`

	IsTimingStop bool `groups:"basic" json:"isTimingStop"`

	PlannedDepartureTime time.Time `groups:"basic" json:"plannedDepartureTime"`
	PlannedArrivalTime   time.Time `groups:"basic" json:"plannedArrivalTime"`
}

type StopRole string

const (
	StopRoleOrigin       StopRole = "Origin"
	StopRoleDestination           = "Destination"
	StopRoleIntermediate          = "Intermediate"
)
