package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ToiletCollection = "toilets"
)

type ToiletStatus string

const (
	ToiletStatusOperational ToiletStatus = "OPERATIONAL"
	ToiletStatusClosedTemp  ToiletStatus = "CLOSED_TEMP"
	ToiletStatusRemoved     ToiletStatus = "REMOVED"
)

// ToiletProperties are the three boolean facility attributes a toilet can
// carry. They double as the allowed nearby-query filter keys.
type ToiletProperties struct {
	IsOpen24h    bool `bson:"isOpen24h" json:"isOpen24h"`
	IsAccessible bool `bson:"isAccessible" json:"isAccessible"`
	HasBabyCare  bool `bson:"hasBabyCare" json:"hasBabyCare"`
}

type Toilet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SourceID     string             `bson:"sourceId,omitempty" json:"sourceId,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Location     *GeoJSON           `bson:"location" json:"location"`
	Properties   ToiletProperties   `bson:"properties" json:"properties"`
	OpeningHours string             `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
	Status       ToiletStatus       `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NearbyToilet is a client response **ONLY** structure carrying the
// server-computed distance (km) of a toilet from the queried point.
type NearbyToilet struct {
	Toilet   Toilet  `bson:"toilet" json:"toilet"`
	Distance float64 `bson:"distance" json:"distance"`
}

// FilterKeys enumerates the property names a nearby query may filter on.
// Anything outside this set is rejected before query construction instead
// of being passed through as a predicate on a non-existent field.
var FilterKeys = []string{"isOpen24h", "isAccessible", "hasBabyCare"}

func IsFilterKey(name string) bool {
	for _, k := range FilterKeys {
		if k == name {
			return true
		}
	}
	return false
}
