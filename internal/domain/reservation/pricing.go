package reservation

import (
	"math"

	"hotel-booking/internal/domain/discount"
)

// ComputePrice is the booking price algorithm: nightly rate times whole
// nights, with an optional discount applied. A flat markdown is subtracted
// and clamped at zero; otherwise a percentage rate is applied and rounded to
// the cent. The flat branch wins when a record somehow carries both, which
// the Terms invariant rules out.
func ComputePrice(nightlyRate Money, stay StayPeriod, terms *discount.Terms) (Money, error) {
	base := nightlyRate.Cents() * stay.Nights()
	if terms == nil {
		return NewMoney(base), nil
	}

	if flat := terms.FlatCents(); flat > 0 {
		result := base - flat
		if result < 0 {
			result = 0
		}
		return NewMoney(result), nil
	}

	if rate := terms.RatePercent(); rate > 0 {
		result := int64(math.Round(float64(base) * (100 - rate) / 100))
		return NewMoney(result), nil
	}

	return Money{}, discount.ErrUnapplicable
}
