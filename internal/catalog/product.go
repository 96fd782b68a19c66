package catalog

import (
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// ErrInvalidProduct is returned when a product record fails validation.
var ErrInvalidProduct = errors.New("invalid product")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Category groups products. Pricing treats it as an opaque label.
type Category struct {
	ID   string
	Name string
}

// Product is an immutable catalog record.
type Product struct {
	ID       string        `validate:"required"`
	Name     string        `validate:"required"`
	Price    pricing.Money `validate:"gte=0"`
	Category Category
}

// NewProduct validates and returns a product record.
func NewProduct(id, name string, price pricing.Money, category Category) (Product, error) {
	p := Product{ID: id, Name: name, Price: price, Category: category}
	if err := validate.Struct(p); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	return p, nil
}

// MustProduct behaves like NewProduct but panics on error.
func MustProduct(id, name string, price pricing.Money, category Category) Product {
	p, err := NewProduct(id, name, price, category)
	if err != nil {
		panic(err)
	}
	return p
}
