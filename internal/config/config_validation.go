// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var supportedDrivers = []string{"pgx", "postgres", "sqlite3", "sqlite"}

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Each group reports its own sentinel error.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver != "sqlite3" && cfg.Storage.DB.Driver != "sqlite" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.SessionCookie == "" || cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session cookie and ttl are required", ErrInvalidAppConfigs)
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return fmt.Errorf("%w: session cleanup interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
