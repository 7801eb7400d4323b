package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/db"
	"github.com/showroom-motors/site/vector"
)

const batchSize = 20

func main() {
	missingOnly := flag.Bool("missing", false, "only embed cars that have no vector yet")
	flag.Parse()

	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := vector.InitGeminiClient(); err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	if err := vector.InitQdrantClient(); err != nil {
		log.Fatalf("Failed to initialize Qdrant client: %v", err)
	}

	ctx := context.Background()
	if err := vector.EnsureCollectionExists(ctx); err != nil {
		log.Fatalf("Failed to ensure collection: %v", err)
	}
	if err := vector.SetupPayloadIndexes(ctx); err != nil {
		log.Fatalf("Failed to set up payload indexes: %v", err)
	}

	load := car.GetAll
	if *missingOnly {
		load = car.GetWithoutVector
	}
	cars, err := load()
	if err != nil {
		log.Fatalf("Failed to get cars: %v", err)
	}
	log.Printf("Rebuilding vectors for %d cars", len(cars))

	failed := 0
	for start := 0; start < len(cars); start += batchSize {
		batch := cars[start:min(start+batchSize, len(cars))]
		log.Printf("Processing cars %d-%d of %d", start+1, start+len(batch), len(cars))

		if err := vector.BuildCarEmbeddings(ctx, batch); err != nil {
			log.Printf("Failed to rebuild batch starting at car %d: %v", batch[0].ID, err)
			failed += len(batch)
		}

		// Sleep to avoid rate limits
		time.Sleep(config.QdrantProcessingSleepInterval)
	}

	log.Printf("Vector rebuild complete! %d of %d cars embedded", len(cars)-failed, len(cars))
}
