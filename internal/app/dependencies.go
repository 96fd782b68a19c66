package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/config"
	"github.com/noah-isme/toko-pricing/internal/obs"
)

// Dependencies bundles the collaborators an embedding application needs to price
// baskets.
type Dependencies struct {
	Logger          zerolog.Logger
	MetricsRegistry *prometheus.Registry
	Metrics         *obs.PricingMetrics
}

// New builds dependencies from configuration. Metrics are registered on a dedicated
// registry when enabled.
func New(cfg *config.Config) *Dependencies {
	if cfg == nil {
		cfg = &config.Config{LogLevel: "info", LogFormat: "json", MetricsNamespace: "toko"}
	}
	deps := &Dependencies{
		Logger: obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger(),
	}
	if cfg.MetricsEnabled {
		deps.MetricsRegistry = prometheus.NewRegistry()
		deps.Metrics = obs.NewPricingMetrics(cfg.MetricsNamespace, deps.MetricsRegistry)
	}
	return deps
}

// NewBasket returns an empty basket wired with the shared logger and metrics.
func (d *Dependencies) NewBasket() *cart.Basket {
	opts := []cart.Option{cart.WithLogger(d.Logger)}
	if d.Metrics != nil {
		opts = append(opts, cart.WithRecorder(d.Metrics))
	}
	return cart.NewBasket(opts...)
}
