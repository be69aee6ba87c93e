package geo_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/locus/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lon float64, label string) geo.Point {
	t.Helper()
	p, err := geo.NewPoint(lat, lon, label)
	require.NoError(t, err)
	return p
}

func TestNewPoint(t *testing.T) {
	t.Parallel()

	t.Run("invalid latitude", func(t *testing.T) {
		t.Parallel()
		for _, lat := range []float64{100, -100, 90.000001, math.NaN(), math.Inf(1)} {
			_, err := geo.NewPoint(lat, 0, "?")
			require.ErrorIs(t, err, geo.ErrInvalidLatitude, "lat=%v", lat)
		}
	})

	t.Run("invalid longitude", func(t *testing.T) {
		t.Parallel()
		for _, lon := range []float64{200, -200, -180.5, math.NaN()} {
			_, err := geo.NewPoint(0, lon, "?")
			require.ErrorIs(t, err, geo.ErrInvalidLongitude, "lon=%v", lon)
		}
	})

	t.Run("latitude checked before longitude", func(t *testing.T) {
		t.Parallel()
		_, err := geo.NewPoint(100, 200, "?")
		require.ErrorIs(t, err, geo.ErrInvalidLatitude)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		t.Parallel()
		for _, c := range [][2]float64{{90, 0}, {-90, 0}, {0, 180}, {0, -180}, {90, 180}, {-90, -180}} {
			p, err := geo.NewPoint(c[0], c[1], "edge")
			require.NoError(t, err)
			assert.InDelta(t, c[0], p.Latitude(), 0)
			assert.InDelta(t, c[1], p.Longitude(), 0)
			assert.Equal(t, "edge", p.Label())
		}
	})
}

func TestParsePoint(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		p, err := geo.ParsePoint(" 34.133171", "108.837420 ", "query")
		require.NoError(t, err)
		assert.InDelta(t, 34.133171, p.Latitude(), 1e-9)
		assert.InDelta(t, 108.837420, p.Longitude(), 1e-9)
	})

	t.Run("malformed latitude", func(t *testing.T) {
		t.Parallel()
		_, err := geo.ParsePoint("north", "108.8", "query")
		require.ErrorIs(t, err, geo.ErrMalformedCoordinate)
		assert.ErrorContains(t, err, "latitude")
	})

	t.Run("malformed longitude", func(t *testing.T) {
		t.Parallel()
		_, err := geo.ParsePoint("34.1", "", "query")
		require.ErrorIs(t, err, geo.ErrMalformedCoordinate)
		assert.ErrorContains(t, err, "longitude")
	})

	t.Run("out of range after parsing", func(t *testing.T) {
		t.Parallel()
		_, err := geo.ParsePoint("34.1", "250", "query")
		require.ErrorIs(t, err, geo.ErrInvalidLongitude)
	})
}

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	newYork := mustPoint(t, 40.7128, -74.0060, "New York")
	losAngeles := mustPoint(t, 34.0522, -118.2437, "Los Angeles")

	t.Run("known distance", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 3944000.0, newYork.DistanceMeters(losAngeles), 50000.0)
	})

	t.Run("symmetry", func(t *testing.T) {
		t.Parallel()
		points := []geo.Point{
			newYork,
			losAngeles,
			mustPoint(t, 34.133171, 108.837420, "A"),
			mustPoint(t, -33.8688, 151.2093, "Sydney"),
			mustPoint(t, 90, 0, "pole"),
			mustPoint(t, 0, -180, "antimeridian"),
		}
		for _, p := range points {
			for _, q := range points {
				assert.Equal(t, p.DistanceMeters(q), q.DistanceMeters(p), "%s <-> %s", p, q)
			}
		}
	})

	t.Run("identity", func(t *testing.T) {
		t.Parallel()
		p := mustPoint(t, 35.0, 139.0, "?")
		assert.Zero(t, p.DistanceMeters(p))
	})

	t.Run("label is ignored", func(t *testing.T) {
		t.Parallel()
		p := mustPoint(t, 35.0, 139.0, "one")
		q := mustPoint(t, 35.0, 139.0, "two")
		assert.Zero(t, p.DistanceMeters(q))
	})

	t.Run("antipodal points", func(t *testing.T) {
		t.Parallel()
		p := mustPoint(t, 0, 0, "")
		q := mustPoint(t, 0, 180, "")
		d := p.DistanceMeters(q)
		assert.False(t, math.IsNaN(d))
		assert.InDelta(t, math.Pi*geo.EarthRadiusMeters, d, 1)
	})

	t.Run("short distance stays accurate", func(t *testing.T) {
		t.Parallel()
		// One thousandth of a degree of latitude.
		p := mustPoint(t, 34.131, 108.84, "")
		q := mustPoint(t, 34.132, 108.84, "")
		assert.InDelta(t, geo.EarthRadiusMeters*math.Pi/180/1000, p.DistanceMeters(q), 0.01)
	})
}
