package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
	"github.com/chcorophyll/Free-Public-Toilet-Map/store"
)

// sourceToilet is one record of the external source file. Its _id becomes
// the sourceId of the stored document; the store assigns its own ids.
type sourceToilet struct {
	ID           string                  `json:"_id"`
	Name         string                  `json:"name"`
	Address      string                  `json:"address"`
	Location     *schema.GeoJSON         `json:"location"`
	Properties   schema.ToiletProperties `json:"properties"`
	OpeningHours string                  `json:"openingHours"`
	Status       schema.ToiletStatus     `json:"status"`
}

func loadSourceFile(path string) ([]schema.Toilet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []sourceToilet
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	toilets := make([]schema.Toilet, 0, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("record %d has no name", i)
		}
		if r.Location == nil || len(r.Location.Coordinates) != 2 {
			return nil, fmt.Errorf("record %d (%s) has no valid location", i, r.Name)
		}

		toilets = append(toilets, schema.Toilet{
			SourceID:     r.ID,
			Name:         r.Name,
			Address:      r.Address,
			Location:     r.Location,
			Properties:   r.Properties,
			OpeningHours: r.OpeningHours,
			Status:       r.Status,
		})
	}

	return toilets, nil
}

func main() {
	var dataFile string
	flag.StringVar(&dataFile, "file", "haikou_toilets.json", "path of the source JSON file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}
	viper.AutomaticEnv()
	viper.SetDefault("mongodb_database", "toiletmap")

	runID := uuid.NewString()
	runLog := log.WithField("prefix", "import").WithField("run_id", runID)

	connURI := viper.GetString("mongodb_conn_uri")
	if connURI == "" {
		runLog.Fatal("mongodb_conn_uri is not set")
	}
	database := viper.GetString("mongodb_database")

	toilets, err := loadSourceFile(dataFile)
	if err != nil {
		runLog.WithError(err).Fatal("load source file")
	}
	runLog.WithField("records", len(toilets)).Info("source file loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		runLog.WithError(err).Fatal("connect to mongo database")
	}

	mongoStore := store.NewMongoStore(mongoClient, database)
	defer mongoStore.Close()

	inserted, err := mongoStore.ReplaceAllToilets(toilets)
	if err != nil {
		runLog.WithError(err).Fatal("replace toilet collection")
	}

	// a fresh database has no geo index yet; creation is idempotent
	if err := schema.NewMongoDBIndexer(connURI, database).IndexToiletCollection(); err != nil {
		runLog.WithError(err).Fatal("create toilet collection indexes")
	}

	runLog.WithField("inserted", inserted).Info("import finished")
}
