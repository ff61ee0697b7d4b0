package util

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Initialize env vars
func LoadEnvFor(v string) (x string) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	x = os.Getenv(v)

	return
}

// Initialize db connection
func ConnectDB() (client *mongo.Client) {
	client, err := mongo.NewClient(options.Client().ApplyURI(LoadEnvFor("DATABASE_URL")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// try to ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	Log.Info("MongoDB connection successful")
	return
}

// DB client instance, set by InitConnections before the router starts.
var DB *mongo.Client

// GetCollection Get collection from Db
func GetCollection(client *mongo.Client, name string) (collection *mongo.Collection) {
	collection = client.Database("jarin").Collection(name)
	return
}

// Initialize redis connection
func ConnectRedis() *redis.Client {
	redisUrl := LoadEnvFor("REDIS_URL")
	addr, err := redis.ParseURL(redisUrl)
	if err != nil {
		log.Fatal(err)
	}

	client := redis.NewClient(addr)

	Log.Info("redis connection successful")
	return client
}

var REDIS *redis.Client

// InitConnections dials the backing stores. Main calls it once; anything
// constructed afterwards can assume DB and REDIS are live.
func InitConnections() {
	DB = ConnectDB()
	REDIS = ConnectRedis()
}
