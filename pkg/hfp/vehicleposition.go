package hfp

// VehiclePosition is a single raw GPS/odometer ping. Latitude & Longitude are
// pointers as upstream feeds deliver positions without coordinates when the
// receiver has no fix.
type VehiclePosition struct {
	Latitude  *float64 `groups:"basic" json:"lat" bson:",omitempty"`
	Longitude *float64 `groups:"basic" json:"lng" bson:",omitempty"`

	RecordedAtUnix int64 `groups:"basic" json:"recordedAtUnix"`
}

func (p *VehiclePosition) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
