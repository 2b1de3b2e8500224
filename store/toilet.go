package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

var (
	ErrToiletNotFound   = fmt.Errorf("toilet not found")
	ErrUnknownFilterKey = fmt.Errorf("unknown filter key")
	ErrEmptyImport      = fmt.Errorf("no toilets to import")
)

type Toilet interface {
	NearbyToilets(distance int, cords schema.Location, filterKeys []string) ([]schema.Toilet, error)
	NearbyToiletsWithDistance(cords schema.Location, limit int64) ([]schema.NearbyToilet, error)
	GetToilet(id primitive.ObjectID) (*schema.Toilet, error)
	GetToiletBySourceID(sourceID string) (*schema.Toilet, error)
	ReplaceAllToilets(toilets []schema.Toilet) (int, error)
	CountToilets() (int64, error)
}

// NearbyToilets returns every toilet within the given distance (meters) of
// a point, ordered nearest first by the 2dsphere index. Filter keys narrow
// the result to toilets whose named property is true; keys outside
// schema.FilterKeys are rejected before the query is built.
func (m *mongoDB) NearbyToilets(distance int, cords schema.Location, filterKeys []string) ([]schema.Toilet, error) {
	query := distanceQuery(distance, cords)
	for _, key := range filterKeys {
		if !schema.IsFilterKey(key) {
			return nil, ErrUnknownFilterKey
		}
		query["properties."+key] = true
	}

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby toilets with error: %s", err.Error())
		return nil, err
	}

	toilets := make([]schema.Toilet, 0)
	for cur.Next(ctx) {
		var t schema.Toilet
		if err := cur.Decode(&t); nil != err {
			log.WithField("prefix", mongoLogPrefix).Errorf("decode nearby toilet with error: %s", err.Error())
			return nil, err
		}
		toilets = append(toilets, t)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby query gets %d toilets near long:%v lat:%v",
		len(toilets), cords.Longitude, cords.Latitude)

	return toilets, nil
}

// NearbyToiletsWithDistance returns the toilets nearest to a point along
// with the distance mongo computed for each, converted to kilometers with
// two decimals.
func (m *mongoDB) NearbyToiletsWithDistance(cords schema.Location, limit int64) ([]schema.NearbyToilet, error) {
	c := m.client.Database(m.database).Collection(schema.ToiletCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		geoWithDistanceAggregate(cords),
		limitAggregate(limit),
		bson.D{{Key: "$project", Value: bson.M{
			"_id":      -1,
			"distance": 1,
			"toilet": bson.M{
				"_id":          "$_id",
				"sourceId":     "$sourceId",
				"name":         "$name",
				"address":      "$address",
				"location":     "$location",
				"properties":   "$properties",
				"openingHours": "$openingHours",
				"status":       "$status",
				"createdAt":    "$createdAt",
				"updatedAt":    "$updatedAt",
			},
		}}},
	}

	opts := options.Aggregate().SetMaxTime(defaultTimeout)
	cursor, err := c.Aggregate(ctx, pipeline, opts)
	if err != nil {
		log.WithError(err).Warnf("can not aggregate nearby toilets")
		return []schema.NearbyToilet{}, err
	}

	results := []schema.NearbyToilet{}
	for cursor.Next(ctx) {
		var nearby schema.NearbyToilet
		if err := cursor.Decode(&nearby); err != nil {
			log.WithError(err).Warnf("nearby toilet decode fail")
			continue
		}
		km, err := strconv.ParseFloat(fmt.Sprintf("%0.2f", nearby.Distance/1000), 64)
		if err != nil {
			log.WithError(err).Warnf("nearby toilet distance parse fail")
			continue
		}
		nearby.Distance = km
		results = append(results, nearby)
	}
	return results, nil
}

// GetToilet finds a toilet by its store-assigned id.
func (m *mongoDB) GetToilet(id primitive.ObjectID) (*schema.Toilet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	var toilet schema.Toilet
	query := bson.M{"_id": id}
	if err := c.FindOne(ctx, query).Decode(&toilet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrToiletNotFound
		}
		return nil, err
	}

	return &toilet, nil
}

// GetToiletBySourceID finds a toilet by the identifier carried over from
// the external data import.
func (m *mongoDB) GetToiletBySourceID(sourceID string) (*schema.Toilet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	var toilet schema.Toilet
	query := bson.M{"sourceId": sourceID}
	if err := c.FindOne(ctx, query).Decode(&toilet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrToiletNotFound
		}
		return nil, err
	}

	return &toilet, nil
}

// ReplaceAllToilets wipes the collection and inserts the given records in
// one batch. The import is all-or-nothing at the insert step: a failed
// insert leaves an empty collection rather than a partial mix of old and
// new data.
func (m *mongoDB) ReplaceAllToilets(toilets []schema.Toilet) (int, error) {
	if len(toilets) == 0 {
		return 0, ErrEmptyImport
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(toilets))
	for i := range toilets {
		t := toilets[i]
		if t.Status == "" {
			t.Status = schema.ToiletStatusOperational
		}
		t.CreatedAt = now
		t.UpdatedAt = now
		docs = append(docs, t)
	}

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("wipe toilet collection")
		return 0, err
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("bulk insert toilets")
		return 0, err
	}

	return len(result.InsertedIDs), nil
}

// CountToilets returns the number of records in the collection.
func (m *mongoDB) CountToilets() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)
	return c.CountDocuments(ctx, bson.M{})
}

// distanceQuery builds the nearest-sphere predicate on the location field.
// distance is in meters.
func distanceQuery(distance int, cords schema.Location) bson.M {
	return bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{cords.Longitude, cords.Latitude},
				},
				"$maxDistance": distance,
			},
		},
	}
}

func geoWithDistanceAggregate(cords schema.Location) bson.D {
	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near":          bson.M{"type": "Point", "coordinates": bson.A{cords.Longitude, cords.Latitude}},
		"distanceField": "distance",
		"spherical":     true,
	}}}
}

func limitAggregate(number int64) bson.D {
	return bson.D{{Key: "$limit", Value: number}}
}
