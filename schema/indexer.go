package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes the toilet collection relies on. It is
// run once at server and importer start-up; index creation is idempotent on
// the mongo side.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexToiletCollection creates the 2dsphere index on the location field,
// which the nearby query depends on, and a sparse unique index on sourceId
// so re-imported records keep a stable external identity.
func (i *MongoDBIndexer) IndexToiletCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(i.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	c := client.Database(i.database).Collection(ToiletCollection)

	_, err = c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.M{"location": "2dsphere"},
		},
		{
			Keys:    bson.M{"sourceId": 1},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		log.WithError(err).Error("fail to create toilet collection indexes")
		return err
	}

	return nil
}
