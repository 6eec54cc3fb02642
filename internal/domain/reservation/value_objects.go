package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange  = errors.New("check-out must be strictly after check-in")
	ErrNegativeMoney     = errors.New("money cannot be negative")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
)

// StayPeriod is a half-open booking window. Check-out strictly after check-in
// is the only ordering rule; overlap with other stays is not a concern here.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidDateRange
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayPeriod hydrates stored values without re-validating them.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

// Nights counts whole days between check-in and check-out, truncating any
// partial day.
func (s StayPeriod) Nights() int64 {
	return int64(s.checkOut.Sub(s.checkIn) / (24 * time.Hour))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// String renders the amount with two decimal places, e.g. "270.00".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
