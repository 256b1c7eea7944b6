package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// DB is the application database handle. Set by ConnectDB.
var DB *mongo.Database

var mongoClient *mongo.Client

// ConnectDB opens the MongoDB connection and verifies it with a ping.
// The process cannot do anything useful without a database, so any failure
// here is fatal.
func ConnectDB() {
	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		slog.Error("MONGO_URL environment variable is not set")
		os.Exit(1)
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "flux_crm"
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("Failed to create MongoDB client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		slog.Error("Failed to reach MongoDB", "error", err)
		os.Exit(1)
	}

	mongoClient = client
	DB = client.Database(dbName)
	slog.Info("Connected to MongoDB", "database", dbName)
}

// DisconnectDB closes the MongoDB connection on shutdown.
func DisconnectDB() {
	if mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		slog.Error("Failed to disconnect from MongoDB", "error", err)
	}
}
