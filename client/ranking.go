package client

import (
	"sort"

	"github.com/chcorophyll/Free-Public-Toilet-Map/geo"
	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

// nearestListCap is how many list entries are shown when no filter is
// active; with a filter on, the whole filtered set is shown.
const nearestListCap = 10

// RankedToilet is a toilet annotated with its distance from the user.
type RankedToilet struct {
	schema.Toilet

	DistanceKm    float64
	DistanceLabel string
}

// RankByDistance computes the list the filter panel displays: every toilet
// annotated with its distance from the user, sorted nearest first, and —
// only when no filter is active — cut to the ten nearest. It is pure: the
// input slice is left untouched and the result depends only on the three
// arguments.
func RankByDistance(toilets []schema.Toilet, user schema.Location, filters Filters) []RankedToilet {
	ranked := make([]RankedToilet, 0, len(toilets))
	for _, t := range toilets {
		if t.Location == nil {
			continue
		}
		km := geo.Distance(user, t.Location.Location())
		ranked = append(ranked, RankedToilet{
			Toilet:        t,
			DistanceKm:    km,
			DistanceLabel: geo.FormatDistance(km),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if filters.None() && len(ranked) > nearestListCap {
		ranked = ranked[:nearestListCap]
	}

	return ranked
}
