package config_fx

import (
	"log"

	"go.uber.org/fx"

	"itinero/pkg/config"
)

var Module = fx.Provide(
	provideConfig)

func provideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	return cfg
}
