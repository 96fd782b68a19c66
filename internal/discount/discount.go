// Package discount implements the basket pricing rules evaluated by cart.Basket.
package discount

import (
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/toko-pricing/internal/cart"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// ErrInvalidConfig is returned by constructors when a rule is misconfigured.
var ErrInvalidConfig = errors.New("invalid discount configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Kind labels reported through cart.Named.
const (
	KindBuyXGetYFree    = "buy_x_get_y_free"
	KindCombinationDeal = "combination_deal"
	KindGeneralBasket   = "general_basket"
	KindProductSpecific = "product_specific"
)

var (
	_ cart.Discount = BuyXGetYFree{}
	_ cart.Discount = CombinationDeal{}
	_ cart.Discount = GeneralBasket{}
	_ cart.Discount = ProductSpecific{}
)

func validateConfig(rule any) error {
	if err := validate.Struct(rule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// eligibleItems returns the lines targeted by productIDs that are not excluded and
// carry a positive unit price.
func eligibleItems(b *cart.Basket, productIDs []string, excluded cart.IDSet) []cart.Item {
	b.Logger().Debug().
		Strs("product_ids", productIDs).
		Strs("excluded", excluded.Sorted()).
		Msg("filtering eligible items")

	targets := cart.NewIDSet(productIDs...)
	var out []cart.Item
	for _, it := range b.Items() {
		id := it.Product.ID
		if !targets.Has(id) || excluded.Has(id) || it.Product.Price <= 0 {
			continue
		}
		out = append(out, it)
	}
	return out
}

// notApplied is the result of a rule that changes nothing.
func notApplied(b *cart.Basket, kind, reason string) (pricing.Money, cart.IDSet) {
	b.Logger().Info().Str("discount", kind).Msg(reason)
	return b.CalculateTotal(), cart.IDSet{}
}

func productIDs(items []cart.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Product.ID)
	}
	return ids
}
