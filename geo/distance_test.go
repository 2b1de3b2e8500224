package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

var (
	haikouClockTower = schema.Location{Latitude: 20.0458, Longitude: 110.3417}
	haikouEastLake   = schema.Location{Latitude: 20.0226, Longitude: 110.3455}
	taipei           = schema.Location{Latitude: 25.0330, Longitude: 121.5654}
)

func TestDistanceSymmetric(t *testing.T) {
	assert.Equal(t, Distance(haikouClockTower, taipei), Distance(taipei, haikouClockTower))
	assert.Equal(t, Distance(haikouClockTower, haikouEastLake), Distance(haikouEastLake, haikouClockTower))
}

func TestDistanceZeroToSelf(t *testing.T) {
	assert.Equal(t, 0.0, Distance(haikouClockTower, haikouClockTower))
	assert.Equal(t, 0.0, Distance(schema.Location{}, schema.Location{}))
}

func TestDistanceKnownPair(t *testing.T) {
	// clock tower to east lake is roughly 2.6 km
	d := Distance(haikouClockTower, haikouEastLake)
	assert.InDelta(t, 2.6, d, 0.1)

	// haikou to taipei is roughly 1290 km
	assert.InDelta(t, 1290, Distance(haikouClockTower, taipei), 20)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "520m", FormatDistance(0.52))
	assert.Equal(t, "1000m", FormatDistance(0.9999))
	assert.Equal(t, "1.0km", FormatDistance(1.0))
	assert.Equal(t, "1.5km", FormatDistance(1.53))
	assert.Equal(t, "0m", FormatDistance(0))
}
