package discount

import (
	"fmt"

	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// ProductSpecific takes a percentage off every unit of one product.
type ProductSpecific struct {
	ProductID  string `validate:"required"`
	Percentage pricing.Percent
}

// NewProductSpecific validates and returns the rule.
func NewProductSpecific(productID string, percentage pricing.Percent) (ProductSpecific, error) {
	d := ProductSpecific{ProductID: productID, Percentage: percentage}
	if err := validateConfig(d); err != nil {
		return ProductSpecific{}, err
	}
	if percentage.IsNegative() {
		return ProductSpecific{}, fmt.Errorf("%w: percentage %s is negative", ErrInvalidConfig, percentage)
	}
	return d, nil
}

func (d ProductSpecific) Kind() string { return KindProductSpecific }

// Apply implements cart.Discount.
func (d ProductSpecific) Apply(b *cart.Basket, excluded cart.IDSet) (pricing.Money, cart.IDSet) {
	if b.IsEmpty() {
		return notApplied(b, d.Kind(), "basket is empty")
	}
	items := eligibleItems(b, []string{d.ProductID}, excluded)
	if len(items) == 0 {
		return notApplied(b, d.Kind(), "no eligible items")
	}

	var discount pricing.Money
	for _, it := range items {
		discount += it.Subtotal().Percent(d.Percentage)
	}
	total := pricing.NonNegative(b.CalculateTotal() - discount)

	b.Logger().Info().
		Str("discount", d.Kind()).
		Str("product_id", d.ProductID).
		Stringer("percentage", d.Percentage).
		Int64("discount_minor", int64(discount)).
		Int64("total_minor", int64(total)).
		Msg("evaluated discount")
	return total, cart.NewIDSet(d.ProductID)
}
