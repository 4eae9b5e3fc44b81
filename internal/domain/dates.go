package domain

import (
	"fmt"
	"time"
)

// DateLayout is the short date form accepted on the command line
const DateLayout = "2006-01-02"

// DateRange bounds a listing by instant. Nil bounds are open.
type DateRange struct {
	Since *time.Time
	Until *time.Time
}

// ParseDate accepts YYYY-MM-DD (midnight UTC) or an RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, s)
}

// ParseDateRange parses optional since/until flags. Empty strings leave a bound open.
func ParseDateRange(since, until string) (DateRange, error) {
	var r DateRange
	if since != "" {
		t, err := ParseDate(since)
		if err != nil {
			return DateRange{}, err
		}
		r.Since = &t
	}
	if until != "" {
		t, err := ParseDate(until)
		if err != nil {
			return DateRange{}, err
		}
		r.Until = &t
	}
	return r, nil
}

// Contains reports whether t falls within the range. Both bounds are inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.Since != nil && t.Before(*r.Since) {
		return false
	}
	if r.Until != nil && t.After(*r.Until) {
		return false
	}
	return true
}
