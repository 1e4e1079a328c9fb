package bootstrap

import (
	"fmt"
	"log"

	"github.com/go-authgate/tokengate/internal/config"
)

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.APIKey == "" {
		log.Printf("WARNING: API_KEY is not set; every /tokens request will fail with 500")
	}
	if cfg.IsProduction && cfg.MetricsEnabled && cfg.MetricsToken == "" {
		log.Printf("WARNING: /metrics is exposed without METRICS_TOKEN in production")
	}
	return nil
}
