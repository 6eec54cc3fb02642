package discount

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCode    = errors.New("discount code cannot be empty")
	ErrCodeTooLong    = errors.New("discount code is too long (max 100 characters)")
	ErrInvalidShape   = errors.New("exactly one of rate or flat amount must be positive")
	ErrRateOutOfRange = errors.New("rate must be between 0 and 100")
	ErrNegativeFlat   = errors.New("flat amount cannot be negative")
	ErrUnapplicable   = errors.New("the discount could not be applied")
)

const MaxCodeLength = 100

type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, ErrInvalidCode
	}
	if len(s) > MaxCodeLength {
		return Code{}, ErrCodeTooLong
	}
	return Code{value: s}, nil
}

// ReconstructCode hydrates a stored value without re-validating it.
func ReconstructCode(s string) Code {
	return Code{value: s}
}

func (c Code) Value() string {
	return c.value
}

// Terms is either a flat amount in cents or a percentage rate, never both.
type Terms struct {
	ratePercent float64
	flatCents   int64
}

// NewTerms enforces the mutual-exclusion invariant: not both zero, not both
// positive.
func NewTerms(ratePercent float64, flatCents int64) (Terms, error) {
	if ratePercent < 0 || ratePercent > 100 {
		return Terms{}, ErrRateOutOfRange
	}
	if flatCents < 0 {
		return Terms{}, ErrNegativeFlat
	}
	if ratePercent == 0 && flatCents == 0 {
		return Terms{}, ErrInvalidShape
	}
	if ratePercent > 0 && flatCents > 0 {
		return Terms{}, ErrInvalidShape
	}
	return Terms{ratePercent: ratePercent, flatCents: flatCents}, nil
}

// ReconstructTerms hydrates stored values without re-validating them.
func ReconstructTerms(ratePercent float64, flatCents int64) Terms {
	return Terms{ratePercent: ratePercent, flatCents: flatCents}
}

func (t Terms) IsFlat() bool {
	return t.flatCents > 0
}

func (t Terms) RatePercent() float64 { return t.ratePercent }
func (t Terms) FlatCents() int64     { return t.flatCents }
