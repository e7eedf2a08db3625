package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/javiator/tenant-management-applications/internal/config"
	"github.com/javiator/tenant-management-applications/internal/store"
)

func openStore(cfg *config.Config) (*store.Store, error) {
	s, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return s, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
