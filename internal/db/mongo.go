package db

import (
	"context"
	"log"
	"time"

	"learning-service/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client   *mongo.Client
	Database *mongo.Database
)

func InitMongo(cfg config.MongoDBConfig) error {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.PoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Printf("Error connecting to MongoDB: %v", err)
		return err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := Client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Printf("Error pinging MongoDB: %v", err)
		return err
	}

	Database = Client.Database(cfg.Database)
	log.Printf("Successfully connected to MongoDB database: %s", cfg.Database)

	return nil
}

// CreateIndexes creates the indexes the read paths depend on.
func CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		"contents": {
			{Keys: bson.D{{Key: "course_id", Value: 1}}},
		},
		"engagements": {
			{Keys: bson.D{{Key: "learner_id", Value: 1}}},
			{Keys: bson.D{{Key: "course_id", Value: 1}}},
			{Keys: bson.D{{Key: "content_id", Value: 1}}},
			{Keys: bson.D{{Key: "timestamp", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := Database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

// CloseDB closes the MongoDB connection.
func CloseDB() {
	if Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := Client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}
}
