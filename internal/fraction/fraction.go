package fraction

import (
	"errors"
	"fmt"
)

// MinutesPerHour is the denominator every fraction starts from.
const MinutesPerHour = 60

// ErrOutOfRange is returned for minutes outside [0, 59].
var ErrOutOfRange = errors.New("minute out of range")

// Fraction is a fraction of an hour in lowest terms. Den always divides 60.
type Fraction struct {
	Num int
	Den int
}

// Reduce returns minute/60 in lowest terms. Minute 0 reduces to 0/1.
func Reduce(minute int) (Fraction, error) {
	if minute < 0 || minute >= MinutesPerHour {
		return Fraction{}, fmt.Errorf("%w: %d", ErrOutOfRange, minute)
	}

	d := gcd(minute, MinutesPerHour)
	return Fraction{Num: minute / d, Den: MinutesPerHour / d}, nil
}

// String renders the fraction as Num/Den.
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// IsUnit reports whether the numerator is 1.
func (f Fraction) IsUnit() bool {
	return f.Num == 1
}

// IsHalf reports whether the fraction is exactly one half.
func (f Fraction) IsHalf() bool {
	return f.Num == 1 && f.Den == 2
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
