package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

var rankingUser = schema.Location{Latitude: 20.04, Longitude: 110.32}

// fifteenToilets returns records at increasing eastward offsets from the
// user, so the expected distance order matches the creation order.
func fifteenToilets() []schema.Toilet {
	toilets := make([]schema.Toilet, 0, 15)
	for i := 0; i < 15; i++ {
		toilets = append(toilets, schema.Toilet{
			ID:       primitive.NewObjectID(),
			Name:     fmt.Sprintf("toilet-%d", i),
			Location: schema.NewPoint(rankingUser.Longitude+float64(i+1)*0.001, rankingUser.Latitude),
		})
	}
	return toilets
}

func TestRankByDistanceCapsAtTenWithoutFilters(t *testing.T) {
	toilets := fifteenToilets()
	// shuffle deterministically so the input is not already sorted
	shuffled := []schema.Toilet{
		toilets[7], toilets[2], toilets[14], toilets[0], toilets[9],
		toilets[11], toilets[4], toilets[1], toilets[13], toilets[6],
		toilets[3], toilets[10], toilets[8], toilets[12], toilets[5],
	}

	ranked := RankByDistance(shuffled, rankingUser, Filters{})

	assert.Len(t, ranked, 10)
	for i := range ranked {
		assert.Equal(t, fmt.Sprintf("toilet-%d", i), ranked[i].Name)
		if i > 0 {
			assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
		}
	}
}

func TestRankByDistanceNoCapWithActiveFilter(t *testing.T) {
	ranked := RankByDistance(fifteenToilets(), rankingUser, Filters{IsOpen24h: true})

	assert.Len(t, ranked, 15)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
}

func TestRankByDistanceIsPure(t *testing.T) {
	toilets := fifteenToilets()
	first := RankByDistance(toilets, rankingUser, Filters{})
	second := RankByDistance(toilets, rankingUser, Filters{})

	assert.Equal(t, first, second)
	// the input order is untouched
	for i, toilet := range toilets {
		assert.Equal(t, fmt.Sprintf("toilet-%d", i), toilet.Name)
	}
}

func TestRankByDistanceSkipsRecordsWithoutLocation(t *testing.T) {
	toilets := fifteenToilets()
	toilets = append(toilets, schema.Toilet{Name: "no-location"})

	ranked := RankByDistance(toilets, rankingUser, Filters{HasBabyCare: true})
	assert.Len(t, ranked, 15)
	for _, r := range ranked {
		assert.NotEqual(t, "no-location", r.Name)
	}
}

func TestRankByDistanceAnnotatesLabels(t *testing.T) {
	toilets := []schema.Toilet{
		{Name: "near", Location: schema.NewPoint(rankingUser.Longitude+0.001, rankingUser.Latitude)},
	}

	ranked := RankByDistance(toilets, rankingUser, Filters{})
	assert.Len(t, ranked, 1)
	assert.Greater(t, ranked[0].DistanceKm, 0.0)
	assert.Regexp(t, `^\d+m$`, ranked[0].DistanceLabel)
}

func TestFilters(t *testing.T) {
	var f Filters
	assert.True(t, f.None())
	assert.Equal(t, "", f.CSV())

	f = f.Toggle("isOpen24h").Toggle("isAccessible")
	assert.False(t, f.None())
	assert.Equal(t, []string{"isOpen24h", "isAccessible"}, f.Keys())
	assert.Equal(t, "isOpen24h,isAccessible", f.CSV())

	f = f.Toggle("isOpen24h")
	assert.Equal(t, "isAccessible", f.CSV())

	// unknown keys are ignored
	assert.Equal(t, f, f.Toggle("isInjectable"))
}
