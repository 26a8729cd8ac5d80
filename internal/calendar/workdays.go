package calendar

import (
	"errors"
	"time"
)

// ErrInvalidWorkingDays is returned when a projection is requested for less
// than one working day.
var ErrInvalidWorkingDays = errors.New("working day count must be at least 1")

// NonWorkingDay is one excluded calendar day inside a leave range, tagged by
// reason. A day can carry more than one tag (a holiday on a Saturday).
type NonWorkingDay struct {
	Date              time.Time `json:"date"`
	IsWeekend         bool      `json:"is_weekend"`
	IsHoliday         bool      `json:"is_holiday"`
	IsCollectiveLeave bool      `json:"is_collective_leave"`
}

// ProjectEndDate returns the end date of a leave starting at start and
// spanning workingDays working days.
//
// The start date always counts as the first working day even when it is
// itself a weekend or holiday. That mirrors how leave forms have always been
// filled here: the clerk warns the user instead of shifting the start date.
func (s *HolidaySet) ProjectEndDate(start time.Time, workingDays int) (time.Time, error) {
	if workingDays < 1 {
		return time.Time{}, ErrInvalidWorkingDays
	}

	current := start
	counted := 1
	for counted < workingDays {
		current = current.AddDate(0, 0, 1)
		if !s.IsNonWorkingDay(current) {
			counted++
		}
	}
	return current, nil
}

// ScanRange lists every excluded day in [start, end] inclusive, ascending.
// Working days are omitted; an inverted range yields an empty result rather
// than an error.
func (s *HolidaySet) ScanRange(start, end time.Time) []NonWorkingDay {
	out := []NonWorkingDay{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := NonWorkingDay{
			Date:              d,
			IsWeekend:         IsWeekend(d),
			IsHoliday:         s.IsNationalHoliday(d),
			IsCollectiveLeave: s.IsCollectiveLeave(d),
		}
		if day.IsWeekend || day.IsHoliday || day.IsCollectiveLeave {
			out = append(out, day)
		}
	}
	return out
}

// CountWorkingDays counts the working days in [start, end] inclusive. The
// start date is always counted, matching ProjectEndDate, so the two stay
// inverse of each other. Returns 0 when end is before start.
func (s *HolidaySet) CountWorkingDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	count := 1
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		if !s.IsNonWorkingDay(d) {
			count++
		}
	}
	return count
}
