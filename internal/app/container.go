package app

import (
	"context"
	"log"
	"time"

	"skillmatch/internal/config"
	"skillmatch/internal/database"
	dbpostgres "skillmatch/internal/database/postgres"
	"skillmatch/internal/infrastructure/cache"
	"skillmatch/internal/infrastructure/gemini"
)

type Container struct {
	Config    config.Config
	DB        database.DB
	Cache     *cache.Redis
	Generator gemini.Generator
	Logger    *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Logger: logger,
	}

	// The generator is optional: without an API key the gap summary
	// degrades and extraction returns 502.
	if cfg.Gemini.APIKey != "" {
		gen, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Printf("gemini client unavailable: %v", err)
		} else {
			c.Generator = gen
		}
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
