package pricing

// Summary aggregates computed pricing components.
type Summary struct {
	Subtotal Money
	Discount Money
	Total    Money
}

// Summarize derives the discount component from an undiscounted subtotal and the
// final total. A total above the subtotal yields a zero discount.
func Summarize(subtotal, total Money) Summary {
	total = NonNegative(total)
	discount := subtotal - total
	if discount < 0 {
		discount = 0
	}
	return Summary{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}
}
