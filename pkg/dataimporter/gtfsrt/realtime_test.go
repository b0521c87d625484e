package gtfsrt

import (
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func vehicleEntity(id string, tripID string, routeID string, direction uint32, timestamp time.Time, withPosition bool) *gtfs.FeedEntity {
	vehicle := &gtfs.VehiclePosition{
		Trip: &gtfs.TripDescriptor{
			TripId:      proto.String(tripID),
			RouteId:     proto.String(routeID),
			DirectionId: proto.Uint32(direction),
			StartDate:   proto.String("20250901"),
			StartTime:   proto.String("08:00:00"),
		},
		Timestamp: proto.Uint64(uint64(timestamp.Unix())),
	}

	if withPosition {
		vehicle.Position = &gtfs.Position{
			Latitude:  proto.Float32(60.17),
			Longitude: proto.Float32(24.94),
		}
	}

	return &gtfs.FeedEntity{
		Id:      proto.String(id),
		Vehicle: vehicle,
	}
}

func marshalFeed(t *testing.T, entities ...*gtfs.FeedEntity) []byte {
	t.Helper()

	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
		},
		Entity: entities,
	}

	body, err := proto.Marshal(feed)
	require.NoError(t, err)

	return body
}

func TestExtractVehiclePositions(t *testing.T) {
	now := time.Date(2025, 9, 1, 8, 10, 0, 0, time.UTC)

	t.Run("groups samples by journey identifier", func(t *testing.T) {
		body := marshalFeed(t,
			vehicleEntity("1", "trip-1", "1018", 0, now.Add(-time.Minute), true),
			vehicleEntity("2", "trip-1", "1018", 0, now.Add(-30*time.Second), true),
			vehicleEntity("3", "trip-2", "2550", 1, now.Add(-time.Minute), true),
		)

		samples, err := ExtractVehiclePositions(body, now)
		require.NoError(t, err)

		require.Len(t, samples, 2)

		journeyID := "JOURNEY:1018:0:20250901:08:00:00"
		require.Len(t, samples[journeyID], 2)

		sample := samples[journeyID][0]
		require.NotNil(t, sample.Latitude)
		require.NotNil(t, sample.Longitude)
		assert.InDelta(t, 60.17, *sample.Latitude, 0.001)
		assert.InDelta(t, 24.94, *sample.Longitude, 0.001)
		assert.Equal(t, now.Add(-time.Minute).Unix(), sample.RecordedAtUnix)
	})

	t.Run("skips stale records", func(t *testing.T) {
		body := marshalFeed(t,
			vehicleEntity("1", "trip-1", "1018", 0, now.Add(-time.Hour), true),
			vehicleEntity("2", "trip-1", "1018", 0, now.Add(-time.Minute), true),
		)

		samples, err := ExtractVehiclePositions(body, now)
		require.NoError(t, err)

		journeyID := "JOURNEY:1018:0:20250901:08:00:00"
		assert.Len(t, samples[journeyID], 1)
	})

	t.Run("skips entities without trip identity", func(t *testing.T) {
		body := marshalFeed(t,
			vehicleEntity("1", "", "", 0, now.Add(-time.Minute), true),
		)

		samples, err := ExtractVehiclePositions(body, now)
		require.NoError(t, err)

		assert.Empty(t, samples)
	})

	t.Run("keeps samples without coordinates", func(t *testing.T) {
		body := marshalFeed(t,
			vehicleEntity("1", "trip-1", "1018", 0, now.Add(-time.Minute), false),
		)

		samples, err := ExtractVehiclePositions(body, now)
		require.NoError(t, err)

		journeyID := "JOURNEY:1018:0:20250901:08:00:00"
		require.Len(t, samples[journeyID], 1)
		assert.False(t, samples[journeyID][0].HasCoordinates())
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := ExtractVehiclePositions([]byte("not a protobuf feed"), now)

		assert.Error(t, err)
	})
}
