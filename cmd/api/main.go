package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/savasana-io/savasana/internal/api"
	"github.com/savasana-io/savasana/internal/auth"
	"github.com/savasana-io/savasana/internal/config"
	"github.com/savasana-io/savasana/internal/database"
	"github.com/savasana-io/savasana/internal/store"
)

const version = "1.0.0"

func initializeAPI(configPath string) (*api.Api, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err := database.Seed(db, cfg.Database.Type); err != nil {
			return nil, err
		}
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	st := store.New(db, cfg.Database.Type)

	return api.NewApi(*cfg, st, tokens), nil
}

func main() {
	configPath := flag.String("config", "app.yml", "Path to configuration file")
	flag.Parse()

	// .env is optional; environment variables override the config file
	_ = godotenv.Load()

	log.Printf("Starting Savasana API v%s with config: %s", version, *configPath)

	api, err := initializeAPI(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	api.Serve()
}
