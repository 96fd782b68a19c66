package cart

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-pricing/internal/catalog"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// ErrInvalidQuantity is returned when a non-positive quantity is added.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Item is a product line within a basket.
type Item struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal returns price times quantity for the line.
func (it Item) Subtotal() pricing.Money {
	return it.Product.Price.Times(it.Quantity)
}

// Basket holds at most one line per product id in insertion order.
//
// A Basket performs no locking. Discount evaluation only reads it, so concurrent
// evaluation is safe as long as no AddProduct call runs at the same time; callers must
// not mutate a basket while ApplyDiscounts is in progress.
type Basket struct {
	items    []Item
	index    map[string]int
	logger   zerolog.Logger
	recorder Recorder
}

// Option configures a Basket.
type Option func(*Basket)

// WithLogger sets the logger used by the basket and by discounts evaluated against it.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Basket) {
		b.logger = logger
	}
}

// WithRecorder sets the observer notified of discount outcomes.
func WithRecorder(r Recorder) Option {
	return func(b *Basket) {
		b.recorder = r
	}
}

// NewBasket returns an empty basket. Without WithLogger nothing is logged.
func NewBasket(opts ...Option) *Basket {
	b := &Basket{
		index:  make(map[string]int),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Logger returns the basket's logger.
func (b *Basket) Logger() *zerolog.Logger {
	return &b.logger
}

// AddProduct inserts a product line or increments the quantity of an existing one.
func (b *Basket) AddProduct(product catalog.Product, quantity int) error {
	if quantity <= 0 {
		b.logger.Warn().
			Str("product_id", product.ID).
			Int("quantity", quantity).
			Msg("rejected non-positive quantity")
		return fmt.Errorf("add %s: %w", product.ID, ErrInvalidQuantity)
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[product.ID]; ok {
		b.items[i].Quantity += quantity
		b.logger.Info().
			Str("product_id", product.ID).
			Str("product", product.Name).
			Int("quantity", b.items[i].Quantity).
			Msg("updated basket quantity")
		return nil
	}
	b.index[product.ID] = len(b.items)
	b.items = append(b.items, Item{Product: product, Quantity: quantity})
	b.logger.Info().
		Str("product_id", product.ID).
		Str("product", product.Name).
		Int("quantity", quantity).
		Msg("added product to basket")
	return nil
}

// Items returns a copy of the basket lines in insertion order.
func (b *Basket) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Item looks up the line for a product id.
func (b *Basket) Item(productID string) (Item, bool) {
	i, ok := b.index[productID]
	if !ok {
		return Item{}, false
	}
	return b.items[i], true
}

// Len returns the number of distinct product lines.
func (b *Basket) Len() int {
	return len(b.items)
}

// IsEmpty reports whether the basket has no lines.
func (b *Basket) IsEmpty() bool {
	return len(b.items) == 0
}

// CalculateTotal returns the undiscounted basket total.
func (b *Basket) CalculateTotal() pricing.Money {
	var total pricing.Money
	for _, it := range b.items {
		total += it.Subtotal()
	}
	b.logger.Info().Int64("total_minor", int64(total)).Msg("calculated basket total")
	return total
}

// ApplyDiscounts evaluates discounts in order and returns the final total.
func (b *Basket) ApplyDiscounts(discounts []Discount) pricing.Money {
	return b.Evaluate(discounts).Total
}
