package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"grades_backend/internals/configs"
)

var Client *mongo.Client

// ConnectDB opens the pooled Mongo client. The driver handle is safe for
// concurrent use; everything downstream gets it injected from main.
func ConnectDB() {
	log.Println("[INFO] Connecting to MongoDB...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(configs.MongoDBURL).
		SetMaxPoolSize(20).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(60 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("[ERROR] MongoDB connect failed: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("[ERROR] MongoDB ping failed: %v", err)
	}

	Client = client
	log.Printf("[INFO] Connected to MongoDB: %s", configs.MongoDBName)
}

// GetDatabase returns the configured database handle.
func GetDatabase() *mongo.Database {
	return Client.Database(configs.MongoDBName)
}

// CloseDB releases the client on shutdown.
func CloseDB() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("[WARN] MongoDB disconnect: %v", err)
		return
	}
	log.Println("[INFO] Closed MongoDB connection")
}
