package gtfsrt

import (
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

const staleRecordCutoff = 20 * time.Minute

// ExtractVehiclePositions parses a GTFS-RT feed and converts its vehicle
// entities into position samples keyed by journey identifier. Records that
// haven't been updated recently are skipped.
func ExtractVehiclePositions(feedBody []byte, now time.Time) (map[string][]hfp.VehiclePosition, error) {
	feed := gtfs.FeedMessage{}
	if err := proto.Unmarshal(feedBody, &feed); err != nil {
		return nil, err
	}

	samples := map[string][]hfp.VehiclePosition{}

	for _, entity := range feed.Entity {
		vehiclePosition := entity.GetVehicle()
		if vehiclePosition == nil {
			continue
		}

		recordedAt := time.Unix(int64(vehiclePosition.GetTimestamp()), 0)

		if now.UTC().Sub(recordedAt) > staleRecordCutoff {
			continue
		}

		trip := vehiclePosition.GetTrip()
		if trip.GetTripId() == "" && trip.GetRouteId() == "" {
			continue
		}

		journey := hfp.Journey{
			RouteID:       trip.GetRouteId(),
			DirectionID:   int(trip.GetDirectionId()),
			DepartureDate: trip.GetStartDate(),
			DepartureTime: trip.GetStartTime(),
		}

		sample := hfp.VehiclePosition{
			RecordedAtUnix: recordedAt.Unix(),
		}

		if position := vehiclePosition.GetPosition(); position != nil {
			latitude := float64(position.GetLatitude())
			longitude := float64(position.GetLongitude())

			sample.Latitude = &latitude
			sample.Longitude = &longitude
		}

		journeyID := journey.GenerateID()
		samples[journeyID] = append(samples[journeyID], sample)
	}

	return samples, nil
}
