package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Port        string `envconfig:"RECOMMENDATION_SERVICE_PORT" default:":8083"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Recommender RecommenderConfig
}

// RecommenderConfig tunes the collaborative-filtering pass. The defaults
// match the behavior the rest of the platform expects; override them only for
// experiments.
type RecommenderConfig struct {
	MaxNeighbors        int     `envconfig:"RECOMMENDER_MAX_NEIGHBORS" default:"10"`
	PoolSize            int     `envconfig:"RECOMMENDER_POOL_SIZE" default:"100"`
	NeighborOrderLimit  int     `envconfig:"RECOMMENDER_NEIGHBOR_ORDER_LIMIT" default:"10"`
	RecencyMonths       int     `envconfig:"RECOMMENDER_RECENCY_MONTHS" default:"3"`
	SimilarityThreshold float64 `envconfig:"RECOMMENDER_SIMILARITY_THRESHOLD" default:"0.1"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Println("Warning: .env file not found, using environment variables or defaults.")
		} else {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("could not process environment configuration: %w", err)
	}
	return &cfg, nil
}
