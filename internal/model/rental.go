package model

import (
	"errors"
	"time"
)

// ErrReturnBeforeStart is returned by Close when the return date falls before
// the rental start date.
var ErrReturnBeforeStart = errors.New("return date is before rental start")

// Rental is an agreement under which a cinema rents a film for a date range.
// All dates are day-granular: times of day are truncated on the way in, so
// penalty arithmetic operates on whole days.
//
// The Cinema and Film pointers are convenience back-references resolved from
// CinemaID/FilmID.  They are never serialized; the registry rebuilds them
// after every bulk load (see Registry.RebindReferences).
type Rental struct {
	ID                int        `json:"id"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           time.Time  `json:"endDate"`
	PaymentAmount     float64    `json:"paymentAmount"`
	PenaltyRatePerDay float64    `json:"penaltyRatePerDay"`
	ActualReturnDate  *time.Time `json:"actualReturnDate,omitempty"`

	CinemaID int `json:"cinemaId"`
	FilmID   int `json:"filmId"`

	Cinema *Cinema `json:"-"`
	Film   *Film   `json:"-"`
}

// DateOnly truncates a timestamp to midnight UTC.  Rental arithmetic compares
// calendar days, never times of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Close records the actual return of the film.  The return date is truncated
// to the day and must not precede the rental start.  Close does not guard
// against a second call: re-closing overwrites the previous return date, and
// it is the registry's job to reject that when the re-close policy says so.
func (r *Rental) Close(returnDate time.Time) error {
	day := DateOnly(returnDate)
	if day.Before(DateOnly(r.StartDate)) {
		return ErrReturnBeforeStart
	}
	r.ActualReturnDate = &day
	return nil
}

// IsActive reports whether the film has not been returned yet.
func (r *Rental) IsActive() bool {
	return r.ActualReturnDate == nil
}

// IsOverdue reports whether the rental ran (or is running) past its agreed
// end date.  For a closed rental the actual return date decides; for an
// active one the caller-supplied evaluation date does, so "overdue" is a
// query relative to the caller's clock rather than a stored fact.
func (r *Rental) IsOverdue(checkDate time.Time) bool {
	effective := DateOnly(checkDate)
	if r.ActualReturnDate != nil {
		effective = DateOnly(*r.ActualReturnDate)
	}
	return effective.After(DateOnly(r.EndDate))
}

// CalculatePenalty returns the accrued late-return penalty.  It is zero while
// the rental is active and zero when the film came back on or before the end
// date; otherwise it is the number of whole overdue days times the per-day
// rate.  The penalty is only ever computed against the actual return date —
// a hypothetical penalty for an active rental is a display concern.
func (r *Rental) CalculatePenalty() float64 {
	if r.ActualReturnDate == nil {
		return 0
	}
	overdueDays := int(DateOnly(*r.ActualReturnDate).Sub(DateOnly(r.EndDate)).Hours() / 24)
	if overdueDays <= 0 {
		return 0
	}
	return float64(overdueDays) * r.PenaltyRatePerDay
}
