package hfp

import "time"

type EventType string

const (
	EventTypeDeparture        EventType = "DEP"
	EventTypePlannedDeparture           = "PDE"
	EventTypePassBy                     = "PAS"
	EventTypeArrival                    = "ARR"
	EventTypeArrivedToStop              = "ARS"
	EventTypeDoorsOpen                  = "DOO"
	EventTypeDoorsClose                 = "DOC"
	EventTypePriorityRequest            = "TLR"
	EventTypePriorityResponse           = "TLA"
	EventTypePassengerCount             = "APC"
)

type LocationSource string

const (
	LocationSourceOdometer     LocationSource = "ODO"
	LocationSourceGPS                         = "GPS"
	LocationSourceManual                      = "MAN"
	LocationSourceDeadReckoned                = "DR"
	LocationSourceNone                        = "N/A"
)

type JourneyEvent struct {
	Type   EventType      `groups:"basic" json:"type"`
	StopID string         `groups:"basic" json:"stopId" bson:",omitempty"` // empty for non-stop events
	Loc    LocationSource `groups:"basic" json:"loc"`

	IsVirtual bool `groups:"detailed" json:"_isVirtual"`

	RecordedAtUnix int64     `groups:"basic" json:"recordedAtUnix"`
	RecordedAt     time.Time `groups:"basic" json:"recordedAt"`

	DoorsOpened *bool `groups:"detailed" json:"doorsOpened,omitempty" bson:",omitempty"`
}

// Trusted reports whether the event was directly observed or has been
// manually verified, as opposed to being interpolated by upstream processing.
func (e *JourneyEvent) Trusted() bool {
	return !e.IsVirtual || e.Loc == LocationSourceManual
}

func (e *JourneyEvent) IsDoorEvent() bool {
	if e.Type == EventTypeDoorsOpen || e.Type == EventTypeDoorsClose {
		return true
	}

	return e.DoorsOpened != nil && *e.DoorsOpened
}
