package domain

import (
	"time"
)

// DateFormat is the wire format for rental dates. Dates are calendar days
// with no time component.
const DateFormat = time.DateOnly

// DateRange is a pair of calendar dates selected for a rental. Either end
// may be absent while the user is still picking.
type DateRange struct {
	Start *time.Time `json:"start_date,omitempty"`
	End   *time.Time `json:"end_date,omitempty"`
}

// ParseDate parses a calendar date in 2006-01-02 form, normalized to UTC
// midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// Complete reports whether both dates have been selected.
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Days returns the billable day count for the range. The count is inclusive
// of both endpoints: floor((end-start)/24h) + 1, so a Jun 1 to Jun 3 rental
// is 3 days. A range is valid only when the end date strictly follows the
// start date; an incomplete or non-positive range returns 0 and false.
func (r DateRange) Days() (int, bool) {
	if !r.Complete() {
		return 0, false
	}
	if !r.End.After(*r.Start) {
		return 0, false
	}
	days := int(r.End.Sub(*r.Start).Hours()/24) + 1
	return days, true
}

// RentalQuote is the derived day count and total cost for a valid date range.
type RentalQuote struct {
	Days      int   `json:"days"`
	TotalCost int64 `json:"total_cost"`
}

// Quote derives the rental quote for the range at the given daily price.
// Returns nil when the range yields no valid day count; the caller treats a
// nil quote as "checkout unavailable".
func (r DateRange) Quote(pricePerDay int64) *RentalQuote {
	days, ok := r.Days()
	if !ok {
		return nil
	}
	return &RentalQuote{
		Days:      days,
		TotalCost: int64(days) * pricePerDay,
	}
}
