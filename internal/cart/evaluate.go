package cart

import (
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// Step records the outcome of one discount during evaluation.
type Step struct {
	Discount  string
	Candidate pricing.Money
	Accepted  bool
	Touched   IDSet
}

// Result is the outcome of evaluating a discount list against a basket.
type Result struct {
	pricing.Summary
	Steps []Step
}

// Evaluate applies discounts greedily in the given order.
//
// Each discount sees the same basket and the ids touched by previously accepted
// discounts as its exclusion set. A discount is accepted only when its candidate total
// is strictly below the running total; rejected discounts leave both the total and the
// exclusion set unchanged. Discounts do not compound.
func (b *Basket) Evaluate(discounts []Discount) Result {
	subtotal := b.CalculateTotal()
	final := subtotal
	excluded := IDSet{}
	steps := make([]Step, 0, len(discounts))

	for _, d := range discounts {
		if d == nil {
			continue
		}
		kind := KindOf(d)
		candidate, touched := d.Apply(b, excluded)
		step := Step{Discount: kind, Candidate: candidate, Touched: touched}

		if candidate < final {
			saved := final - candidate
			final = candidate
			excluded.Merge(touched)
			step.Accepted = true
			b.logger.Info().
				Str("discount", kind).
				Int64("total_minor", int64(final)).
				Strs("touched", touched.Sorted()).
				Msg("applied discount")
			b.observe(kind, true, saved)
		} else {
			b.logger.Info().
				Str("discount", kind).
				Int64("candidate_minor", int64(candidate)).
				Int64("total_minor", int64(final)).
				Msg("discount not applied")
			b.observe(kind, false, 0)
		}
		steps = append(steps, step)
	}

	return Result{Summary: pricing.Summarize(subtotal, final), Steps: steps}
}

func (b *Basket) observe(kind string, accepted bool, saved pricing.Money) {
	if b.recorder == nil {
		return
	}
	b.recorder.ObserveDiscount(kind, accepted, saved)
}
