package discount

import (
	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// BuyXGetYFree gives FreeQuantity units of a product away for every RequiredQuantity
// units in the basket.
type BuyXGetYFree struct {
	ProductID        string `validate:"required"`
	RequiredQuantity int    `validate:"gte=1"`
	FreeQuantity     int    `validate:"gte=0"`
}

// NewBuyXGetYFree validates and returns the rule.
func NewBuyXGetYFree(productID string, requiredQuantity, freeQuantity int) (BuyXGetYFree, error) {
	d := BuyXGetYFree{ProductID: productID, RequiredQuantity: requiredQuantity, FreeQuantity: freeQuantity}
	if err := validateConfig(d); err != nil {
		return BuyXGetYFree{}, err
	}
	return d, nil
}

func (d BuyXGetYFree) Kind() string { return KindBuyXGetYFree }

// Apply implements cart.Discount.
func (d BuyXGetYFree) Apply(b *cart.Basket, excluded cart.IDSet) (pricing.Money, cart.IDSet) {
	if b.IsEmpty() {
		return notApplied(b, d.Kind(), "basket is empty")
	}
	items := eligibleItems(b, []string{d.ProductID}, excluded)
	if len(items) == 0 {
		return notApplied(b, d.Kind(), "no eligible items")
	}

	qty := 0
	for _, it := range items {
		qty += it.Quantity
	}
	free := 0
	if d.RequiredQuantity > 0 {
		free = max(0, (qty/d.RequiredQuantity)*d.FreeQuantity)
	}
	discount := items[0].Product.Price.Times(free)
	total := pricing.NonNegative(b.CalculateTotal() - discount)

	b.Logger().Info().
		Str("discount", d.Kind()).
		Str("product_id", d.ProductID).
		Int("free_units", free).
		Int64("discount_minor", int64(discount)).
		Int64("total_minor", int64(total)).
		Msg("evaluated discount")
	return total, cart.NewIDSet(d.ProductID)
}
