package app_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-pricing/internal/app"
	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/catalog"
	"github.com/noah-isme/toko-pricing/internal/config"
	"github.com/noah-isme/toko-pricing/internal/discount"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

func TestNewBasketRecordsMetrics(t *testing.T) {
	deps := app.New(&config.Config{
		AppEnv:           "test",
		LogLevel:         "error",
		LogFormat:        "json",
		MetricsEnabled:   true,
		MetricsNamespace: "test",
	})
	require.Equal(t, zerolog.ErrorLevel, deps.Logger.GetLevel())
	require.NotNil(t, deps.Metrics)

	ipad := catalog.MustProduct("004", "iPad", pricing.MustMoney("499.00"), catalog.Category{ID: "1", Name: "Electronics"})
	b := deps.NewBasket()
	require.NoError(t, b.AddProduct(ipad, 4))

	total := b.ApplyDiscounts([]cart.Discount{
		discount.BuyXGetYFree{ProductID: "004", RequiredQuantity: 3, FreeQuantity: 1},
		discount.ProductSpecific{ProductID: "004", Percentage: pricing.PercentOf(10)},
	})
	require.Equal(t, pricing.MustMoney("1497.00"), total)

	evals := deps.Metrics.Evaluations
	require.Equal(t, 1.0, testutil.ToFloat64(evals.WithLabelValues(discount.KindBuyXGetYFree, "accepted")))
	require.Equal(t, 1.0, testutil.ToFloat64(evals.WithLabelValues(discount.KindProductSpecific, "rejected")))
	require.Equal(t, 49900.0, testutil.ToFloat64(deps.Metrics.Savings.WithLabelValues(discount.KindBuyXGetYFree)))
}

func TestNewWithoutMetrics(t *testing.T) {
	deps := app.New(&config.Config{LogLevel: "info", LogFormat: "json"})
	require.Nil(t, deps.Metrics)
	require.Nil(t, deps.MetricsRegistry)

	b := deps.NewBasket()
	require.True(t, b.IsEmpty())
}
