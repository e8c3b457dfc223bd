package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTime is returned when a time literal is not a valid H:MM or HH:MM value.
var ErrInvalidTime = errors.New("invalid time literal")

// Clock provides time-related functions that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using actual system time
type RealClock struct{}

// Now returns the current system time
func (RealClock) Now() time.Time {
	return time.Now()
}

// literalLayout accepts "9:40" and "09:40" but not "9:4".
const literalLayout = "15:04"

// ClockTime is a wall-clock hour and minute in 24-hour form.
type ClockTime struct {
	Hour   int
	Minute int
}

// FromTime returns the local hour and minute of t.
func FromTime(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// Parse reads a H:MM or HH:MM literal. The minute must be zero-padded.
func Parse(literal string) (ClockTime, error) {
	t, err := time.Parse(literalLayout, literal)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}
	return FromTime(t), nil
}

// Resolve picks the time to render. The last argument that parses as a time
// literal wins; anything else is ignored and the clock is read instead.
// skipped receives every argument that was ignored and may be nil.
func Resolve(c Clock, args []string, skipped func(arg string, err error)) ClockTime {
	var (
		resolved ClockTime
		found    bool
	)
	for _, arg := range args {
		t, err := Parse(arg)
		if err != nil {
			if skipped != nil {
				skipped(arg, err)
			}
			continue
		}
		resolved, found = t, true
	}
	if found {
		return resolved
	}
	return FromTime(c.Now())
}

// String renders the time as zero-padded HH:MM.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Hour12 maps the hour onto a 12-hour dial where both 0 and 12 read as 12.
func (t ClockTime) Hour12() int {
	if t.Hour%12 == 0 {
		return 12
	}
	return t.Hour % 12
}

// NextHour is the upcoming hour on the 12-hour dial; 12 wraps to 1.
func (t ClockTime) NextHour() int {
	return t.Hour12()%12 + 1
}

// TopOfHour reports whether the minute hand is on 12.
func (t ClockTime) TopOfHour() bool {
	return t.Minute == 0
}
