package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidLiterals_Success(t *testing.T) {
	tests := []struct {
		literal string
		want    ClockTime
	}{
		{"9:40", ClockTime{Hour: 9, Minute: 40}},
		{"09:40", ClockTime{Hour: 9, Minute: 40}},
		{"00:00", ClockTime{Hour: 0, Minute: 0}},
		{"12:00", ClockTime{Hour: 12, Minute: 0}},
		{"23:59", ClockTime{Hour: 23, Minute: 59}},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := Parse(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidLiterals_Error(t *testing.T) {
	tests := []string{"25:99", "24:00", "29:30", "9:4", "9:60", "123:00", "noon", "", "10:15pm", " 10:15"}

	for _, literal := range tests {
		t.Run(literal, func(t *testing.T) {
			_, err := Parse(literal)
			if !errors.Is(err, ErrInvalidTime) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidTime", literal, err)
			}
		})
	}
}

func TestResolve_NoArgs_UsesClock(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 17, 45, 30, 0, time.Local))

	got := Resolve(fake, nil, nil)
	assert.Equal(t, ClockTime{Hour: 17, Minute: 45}, got)
}

func TestResolve_MalformedLiteral_FallsBackToClock(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 8, 5, 0, 0, time.Local))

	var skipped []string
	got := Resolve(fake, []string{"25:99"}, func(arg string, err error) {
		assert.ErrorIs(t, err, ErrInvalidTime)
		skipped = append(skipped, arg)
	})

	assert.Equal(t, ClockTime{Hour: 8, Minute: 5}, got)
	assert.Equal(t, []string{"25:99"}, skipped)
}

func TestResolve_LastValidLiteralWins(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 8, 5, 0, 0, time.Local))

	got := Resolve(fake, []string{"10:15", "bogus", "9:40"}, nil)
	assert.Equal(t, ClockTime{Hour: 9, Minute: 40}, got)
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "09:40", ClockTime{Hour: 9, Minute: 40}.String())
	assert.Equal(t, "00:00", ClockTime{}.String())
	assert.Equal(t, "23:05", ClockTime{Hour: 23, Minute: 5}.String())
}

func TestClockTime_Hour12AndNextHour(t *testing.T) {
	tests := []struct {
		hour     int
		hour12   int
		nextHour int
	}{
		{0, 12, 1},
		{1, 1, 2},
		{10, 10, 11},
		{11, 11, 12},
		{12, 12, 1},
		{13, 1, 2},
		{23, 11, 12},
	}

	for _, tt := range tests {
		ct := ClockTime{Hour: tt.hour, Minute: 15}
		if got := ct.Hour12(); got != tt.hour12 {
			t.Errorf("ClockTime{Hour: %d}.Hour12() = %d, want %d", tt.hour, got, tt.hour12)
		}
		if got := ct.NextHour(); got != tt.nextHour {
			t.Errorf("ClockTime{Hour: %d}.NextHour() = %d, want %d", tt.hour, got, tt.nextHour)
		}
	}
}
