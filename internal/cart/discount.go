package cart

import (
	"fmt"

	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// Discount is a pricing rule evaluated against a basket.
//
// Apply returns the candidate basket total with the rule applied and the product ids
// the rule touched. Items whose id is in excluded must not be treated as eligible.
// Implementations never mutate the basket and never return a negative total; a rule
// that does not apply returns the undiscounted total and an empty set.
type Discount interface {
	Apply(b *Basket, excluded IDSet) (pricing.Money, IDSet)
}

// Named is implemented by discounts that report a stable kind label.
type Named interface {
	Kind() string
}

// Recorder observes the outcome of each discount evaluated by the driver.
type Recorder interface {
	ObserveDiscount(kind string, accepted bool, saved pricing.Money)
}

// KindOf returns the kind label of d, falling back to its Go type.
func KindOf(d Discount) string {
	if n, ok := d.(Named); ok {
		return n.Kind()
	}
	return fmt.Sprintf("%T", d)
}
