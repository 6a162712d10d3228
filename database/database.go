package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mu        sync.Mutex
	connected bool

	Client *mongo.Client
	Posts  *mongo.Collection
)

// Connect establishes the shared MongoDB connection. It is idempotent:
// only the first successful call does work, and a failed attempt leaves
// the package unconnected so the caller can retry.
func Connect(uri, dbName string) error {
	mu.Lock()
	defer mu.Unlock()

	if connected {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return err
	}

	Client = client
	Posts = client.Database(dbName).Collection("posts")
	connected = true

	log.Println("Connected to MongoDB successfully")
	return nil
}

func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if !connected {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		return err
	}

	connected = false
	log.Println("Disconnected from MongoDB")
	return nil
}
