package config_fx

import (
	"go.uber.org/fx"
	"log"

	"diamondstore/internal/config"
)

var Module = fx.Provide(
	provideConfig)

func provideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return cfg
}
