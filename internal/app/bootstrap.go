// Package app assembles the advisory service from configuration.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mianwali/crop-advisory/internal/core/service"
	"github.com/mianwali/crop-advisory/internal/infrastructure/config"
	"github.com/mianwali/crop-advisory/internal/infrastructure/memory"
	"github.com/mianwali/crop-advisory/internal/infrastructure/seed"
)

// NewAdvisory loads the seed named by cfg (the embedded one when unset),
// fills fresh in-memory stores and returns the service over them.
func NewAdvisory(cfg config.SeedConfig, log zerolog.Logger, opts ...service.Option) (*service.Advisory, error) {
	data, err := seed.Load(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	catalog := memory.NewCatalogStore()
	users := memory.NewUserDirectory()
	if err := data.Populate(catalog, users, cfg.BcryptCost); err != nil {
		return nil, fmt.Errorf("populate seed: %w", err)
	}

	opts = append([]service.Option{service.WithLogger(log)}, opts...)
	return service.NewAdvisory(catalog, users, memory.NewAuditLog(), opts...), nil
}
