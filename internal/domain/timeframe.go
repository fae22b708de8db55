package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTimeframe is returned when a timeframe tag is not one of the fixed horizons
var ErrUnknownTimeframe = errors.New("unknown timeframe")

// Timeframe is a named projection horizon. The zero value is not a valid timeframe.
type Timeframe uint8

const (
	OneWeek Timeframe = iota + 1
	OneMonth
	OneYear
	FiveYears
	TenYears
	TwentyYears
)

// timeframeInfo holds the tag and day count for each horizon.
// Day counts use 30-day months and 365-day years throughout.
var timeframeInfo = map[Timeframe]struct {
	tag  string
	days int
}{
	OneWeek:     {tag: "1week", days: 7},
	OneMonth:    {tag: "1month", days: 30},
	OneYear:     {tag: "1year", days: 365},
	FiveYears:   {tag: "5years", days: 1825},
	TenYears:    {tag: "10years", days: 3650},
	TwentyYears: {tag: "20years", days: 7300},
}

// ShortTermTimeframes returns the short-term horizons in display order
func ShortTermTimeframes() [4]Timeframe {
	return [4]Timeframe{OneWeek, OneMonth, OneYear, FiveYears}
}

// LongTermTimeframes returns the long-term horizons in display order.
// FiveYears appears in both groupings.
func LongTermTimeframes() [3]Timeframe {
	return [3]Timeframe{FiveYears, TenYears, TwentyYears}
}

// AllTimeframes returns every distinct horizon, shortest first
func AllTimeframes() []Timeframe {
	return []Timeframe{OneWeek, OneMonth, OneYear, FiveYears, TenYears, TwentyYears}
}

// Valid reports whether t is one of the fixed horizons
func (t Timeframe) Valid() bool {
	_, ok := timeframeInfo[t]
	return ok
}

// Days returns the fixed day count for the horizon. It panics for a value
// outside the enumeration; use ParseTimeframe at input boundaries.
func (t Timeframe) Days() int {
	info, ok := timeframeInfo[t]
	if !ok {
		panic(fmt.Sprintf("domain: %v: %d", ErrUnknownTimeframe, uint8(t)))
	}
	return info.days
}

// String returns the timeframe tag, e.g. "1year"
func (t Timeframe) String() string {
	if info, ok := timeframeInfo[t]; ok {
		return info.tag
	}
	return fmt.Sprintf("Timeframe(%d)", uint8(t))
}

// ParseTimeframe converts a tag such as "5years" into a Timeframe
func ParseTimeframe(tag string) (Timeframe, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for tf, info := range timeframeInfo {
		if info.tag == tag {
			return tf, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTimeframe, tag)
}

// MarshalText encodes the timeframe as its tag
func (t Timeframe) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTimeframe, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a timeframe tag
func (t *Timeframe) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeframe(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
