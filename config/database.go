package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client     *mongo.Client
	clientOnce sync.Once
)

func connectDB() *mongo.Client {
	log.Println("Attempting to connect to MongoDB...")

	mongoURI := os.Getenv("MONGO_URI")

	// Fallback for local development
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB is not reachable: %v", err)
	}

	log.Println("Successfully connected to MongoDB!")
	return c
}

// Client connects on first use so that importing this package stays cheap.
func Client() *mongo.Client {
	clientOnce.Do(func() {
		client = connectDB()
	})
	return client
}

func OpenCollection(collectionName string) *mongo.Collection {
	return Client().Database("healthdb").Collection(collectionName)
}
