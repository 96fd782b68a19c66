package discount

import (
	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// CombinationDeal replaces the regular price of a set of products with DealPrice when
// every one of them is eligible.
type CombinationDeal struct {
	ProductIDs []string      `validate:"min=1,unique,dive,required"`
	DealPrice  pricing.Money `validate:"gte=0"`
}

// NewCombinationDeal validates and returns the rule.
func NewCombinationDeal(productIDs []string, dealPrice pricing.Money) (CombinationDeal, error) {
	d := CombinationDeal{ProductIDs: append([]string(nil), productIDs...), DealPrice: dealPrice}
	if err := validateConfig(d); err != nil {
		return CombinationDeal{}, err
	}
	return d, nil
}

func (d CombinationDeal) Kind() string { return KindCombinationDeal }

// Apply implements cart.Discount. The touched set is every configured product id,
// whether or not the deal lowers the total.
func (d CombinationDeal) Apply(b *cart.Basket, excluded cart.IDSet) (pricing.Money, cart.IDSet) {
	if b.IsEmpty() {
		return notApplied(b, d.Kind(), "basket is empty")
	}
	items := eligibleItems(b, d.ProductIDs, excluded)
	if len(items) == 0 {
		return notApplied(b, d.Kind(), "no eligible items")
	}
	present := cart.NewIDSet(productIDs(items)...)
	for _, id := range d.ProductIDs {
		if !present.Has(id) {
			return notApplied(b, d.Kind(), "combination incomplete")
		}
	}

	var regular pricing.Money
	for _, it := range items {
		regular += it.Subtotal()
	}
	total := pricing.NonNegative(b.CalculateTotal() - regular + d.DealPrice)

	b.Logger().Info().
		Str("discount", d.Kind()).
		Strs("product_ids", d.ProductIDs).
		Int64("regular_minor", int64(regular)).
		Int64("total_minor", int64(total)).
		Msg("evaluated discount")
	return total, cart.NewIDSet(d.ProductIDs...)
}
