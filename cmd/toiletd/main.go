package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chcorophyll/Free-Public-Toilet-Map/api"
	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
	"github.com/chcorophyll/Free-Public-Toilet-Map/store"
)

func initConfig() {
	// a local .env is optional; direct environment variables win
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	viper.AutomaticEnv()
	viper.SetDefault("port", "5000")
	viper.SetDefault("mongodb_database", "toiletmap")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("trace_mode", false)
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})
}

func main() {
	initConfig()
	initLog()

	connURI := viper.GetString("mongodb_conn_uri")
	if connURI == "" {
		log.Fatal("mongodb_conn_uri is not set")
	}
	database := viper.GetString("mongodb_database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(connURI)
	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.WithError(err).Fatal("create mongo client")
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.WithError(err).Fatal("connect to mongo database")
	}
	log.WithField("database", database).Info("connected to mongo database")

	if err := schema.NewMongoDBIndexer(connURI, database).IndexToiletCollection(); err != nil {
		log.WithError(err).Fatal("create toilet collection indexes")
	}

	mongoStore := store.NewMongoStore(mongoClient, database)
	defer mongoStore.Close()

	server := api.NewServer(mongoStore, viper.GetBool("trace_mode"))

	addr := fmt.Sprintf(":%s", viper.GetString("port"))
	log.WithField("addr", addr).Info("starting toilet map api server")
	if err := server.Run(addr); err != nil {
		log.WithError(err).Fatal("run api server")
	}
}
