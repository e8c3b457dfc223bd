package render

import (
	"fmt"
	"strconv"

	"github.com/zgpcy/fractime/internal/clock"
	"github.com/zgpcy/fractime/internal/fraction"
	"github.com/zgpcy/fractime/internal/words"
)

// Format selects how the fraction of the hour is printed.
type Format string

// Output formats
const (
	Words   Format = "words"
	Numbers Format = "numbers"
	Both    Format = "both"
)

// Render returns every line fractime prints for t: the digital time first,
// then the phrase in the requested format. The top of the hour is always
// spoken as a whole hour, regardless of format.
func Render(t clock.ClockTime, lang words.Language, format Format) ([]string, error) {
	table, err := words.Lookup(lang)
	if err != nil {
		return nil, err
	}

	lines := []string{t.String()}

	if t.TopOfHour() {
		return append(lines, TopOfHour(t, table)), nil
	}

	frac, err := fraction.Reduce(t.Minute)
	if err != nil {
		return nil, err
	}

	if format == Numbers || format == Both {
		lines = append(lines, Numeric(frac, t.NextHour()))
	}
	if format == Numbers {
		return lines, nil
	}

	phrase, err := Phrase(frac, t.NextHour(), table)
	if err != nil {
		return nil, fmt.Errorf("render %s in %q: %w", t, lang, err)
	}
	return append(lines, phrase), nil
}

// TopOfHour speaks a time whose minute is zero.
func TopOfHour(t clock.ClockTime, table *words.Table) string {
	switch t.Hour {
	case 12:
		return table.Noon
	case 0:
		return table.Midnight
	default:
		return strconv.Itoa(t.Hour12()) + " " + table.OClock
	}
}

// Numeric prints the fraction followed by the hour it counts towards, e.g. "2/3 10".
func Numeric(frac fraction.Fraction, nextHour int) string {
	return fmt.Sprintf("%s %d", frac, nextHour)
}

// Phrase speaks the fraction against the upcoming hour.
func Phrase(frac fraction.Fraction, nextHour int, table *words.Table) (string, error) {
	hour, err := table.Hour(nextHour)
	if err != nil {
		return "", err
	}

	if frac.IsHalf() {
		return table.Half + " " + hour, nil
	}

	if frac.IsUnit() {
		ordinal, err := table.SingularOrdinal(frac.Den)
		if err != nil {
			return "", err
		}
		return ordinal + table.UnitJoiner + hour, nil
	}

	numerator, err := table.Cardinal(frac.Num)
	if err != nil {
		return "", err
	}
	ordinal, err := table.PluralOrdinal(frac.Den)
	if err != nil {
		return "", err
	}
	return numerator + table.NumeratorJoiner + ordinal + " " + hour, nil
}
