// Package bootstrap assembles the long-lived collaborators shared by the API
// server and the tripctl CLI.
package bootstrap

import (
	"net/http"
	"time"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/costs"
	"tripplanner/internal/store"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

// CostSource builds the cost source with live API clients and, when a cache
// path is configured, the SQLite snapshot store. The returned close func
// releases the store.
func CostSource(env intconfig.CostsEnv, log *zap.Logger) (*costs.Source, func(), error) {
	if log == nil {
		log = zap.NewNop()
	}
	catalog, err := costs.DefaultCatalog()
	if err != nil {
		return nil, nil, err
	}

	client := &http.Client{Timeout: env.HTTPTimeout}
	retry := utils.Retry{
		MaxAttempts: env.Retries + 1,
		BaseDelay:   250 * time.Millisecond,
		Retryable:   costs.RetryTransient,
		Log:         log,
	}

	opts := []costs.Option{costs.WithLogger(log)}
	if env.CacheTTL > 0 {
		opts = append(opts, costs.WithTTL(env.CacheTTL))
	}
	closeFn := func() {}
	if env.CachePath != "" {
		snaps, err := store.Open(env.CachePath)
		if err != nil {
			log.Warn("cost snapshot store unavailable, running without persistence",
				zap.String("path", env.CachePath), zap.Error(err))
		} else {
			opts = append(opts, costs.WithStore(snaps))
			closeFn = func() { _ = snaps.Close() }
		}
	}

	src := costs.NewSource(catalog,
		costs.WorldBankClient{BaseURL: env.WorldBankURL, HTTP: client, Retry: retry},
		costs.ExchangeRateClient{BaseURL: env.ExchangeRateURL, HTTP: client, Retry: retry},
		opts...,
	)
	return src, closeFn, nil
}
