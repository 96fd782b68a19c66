package discount

import (
	"fmt"

	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// GeneralBasket takes a percentage off the whole basket total.
type GeneralBasket struct {
	Percentage pricing.Percent
}

// NewGeneralBasket returns the rule. Percentages above 100 are allowed; the total is
// clamped at zero.
func NewGeneralBasket(percentage pricing.Percent) (GeneralBasket, error) {
	if percentage.IsNegative() {
		return GeneralBasket{}, fmt.Errorf("%w: percentage %s is negative", ErrInvalidConfig, percentage)
	}
	return GeneralBasket{Percentage: percentage}, nil
}

func (d GeneralBasket) Kind() string { return KindGeneralBasket }

// Apply implements cart.Discount. Only eligible lines are reported as touched, though
// the percentage is taken off the full basket total.
func (d GeneralBasket) Apply(b *cart.Basket, excluded cart.IDSet) (pricing.Money, cart.IDSet) {
	if b.IsEmpty() {
		return notApplied(b, d.Kind(), "basket is empty")
	}
	items := eligibleItems(b, productIDs(b.Items()), excluded)
	if len(items) == 0 {
		return notApplied(b, d.Kind(), "no eligible items")
	}

	subtotal := b.CalculateTotal()
	discount := subtotal.Percent(d.Percentage)
	total := pricing.NonNegative(subtotal - discount)

	b.Logger().Info().
		Str("discount", d.Kind()).
		Stringer("percentage", d.Percentage).
		Int64("discount_minor", int64(discount)).
		Int64("total_minor", int64(total)).
		Msg("evaluated discount")
	return total, cart.NewIDSet(productIDs(items)...)
}
