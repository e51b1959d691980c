package adpolicy

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/booth-ads/model"
	"time"
)

// ErrInvalidDate when a date field is empty or can not be parsed
var ErrInvalidDate = errors.New("invalid date")

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var localLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a calendar date. Values without a zone are read in loc,
// values with a zone are converted into loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// StartOfDay returns 00:00:00.000 of the calendar day of t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of the calendar day of t
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Window is a normalized eligibility window.
// A window without expiry stays open after its start.
type Window struct {
	Start     time.Time
	Expiry    time.Time
	HasExpiry bool
}

// NewWindow parses and normalizes start and expiry dates in the location of now
func NewWindow(startDate string, expiryDate string, loc *time.Location) (Window, error) {
	start, err := ParseDate(startDate, loc)
	if err != nil {
		return Window{}, fmt.Errorf("start_date: %w", err)
	}

	w := Window{Start: StartOfDay(start)}
	if expiryDate == "" {
		return w, nil
	}

	expiry, err := ParseDate(expiryDate, loc)
	if err != nil {
		return Window{}, fmt.Errorf("expiry_date: %w", err)
	}
	w.Expiry = EndOfDay(expiry)
	w.HasExpiry = true
	return w, nil
}

// Inverted when the start day is after the expiry day
func (w Window) Inverted() bool {
	return w.HasExpiry && w.Start.After(w.Expiry)
}

// StatusAt classifies the window against the calendar day of now
func (w Window) StatusAt(now time.Time) model.EligibilityStatus {
	today := StartOfDay(now)
	if w.Inverted() {
		return model.StatusExpired
	}
	if w.Start.After(today) {
		return model.StatusScheduled
	}
	if w.HasExpiry && w.Expiry.Before(today) {
		return model.StatusExpired
	}
	return model.StatusActive
}
