package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout adalah format tanggal standar di seluruh aplikasi.
const DateLayout = "2006-01-02"

// HolidaySet memuat tabel hari libur per tahun: libur nasional dan cuti
// bersama sesuai SKB tiga menteri. Immutable setelah dibuat.
type HolidaySet struct {
	national   map[string]string
	collective map[string]string
}

// NewHolidaySet builds a set from date-key -> name maps. Keys must use
// DateLayout; entries with malformed keys are dropped.
func NewHolidaySet(national, collective map[string]string) *HolidaySet {
	s := &HolidaySet{
		national:   make(map[string]string, len(national)),
		collective: make(map[string]string, len(collective)),
	}
	for k, v := range national {
		if _, err := time.Parse(DateLayout, k); err == nil {
			s.national[k] = v
		}
	}
	for k, v := range collective {
		if _, err := time.Parse(DateLayout, k); err == nil {
			s.collective[k] = v
		}
	}
	return s
}

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", v, err)
	}
	return t, nil
}

// DateKey normalizes a time to its YYYY-MM-DD key, ignoring time-of-day
// and timezone offsets.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsNationalHoliday reports whether t is a listed national holiday.
func (s *HolidaySet) IsNationalHoliday(t time.Time) bool {
	_, ok := s.national[DateKey(t)]
	return ok
}

// IsCollectiveLeave reports whether t is a listed cuti bersama day.
func (s *HolidaySet) IsCollectiveLeave(t time.Time) bool {
	_, ok := s.collective[DateKey(t)]
	return ok
}

// IsHoliday reports whether t appears in either the national-holiday set or
// the collective-leave set. Years outside the configured tables simply have
// no holidays; weekends still apply.
func (s *HolidaySet) IsHoliday(t time.Time) bool {
	return s.IsNationalHoliday(t) || s.IsCollectiveLeave(t)
}

// IsNonWorkingDay reports whether t is a weekend or any listed holiday.
func (s *HolidaySet) IsNonWorkingDay(t time.Time) bool {
	return IsWeekend(t) || s.IsHoliday(t)
}

// HolidayEntry adalah satu baris tabel libur untuk ditampilkan ke klien.
type HolidayEntry struct {
	Date              string `json:"date"`
	Name              string `json:"name"`
	IsCollectiveLeave bool   `json:"is_collective_leave"`
}

// Entries lists the configured holidays of one year in ascending date order.
func (s *HolidaySet) Entries(year int) []HolidayEntry {
	prefix := strconv.Itoa(year) + "-"
	entries := []HolidayEntry{}
	for k, v := range s.national {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, HolidayEntry{Date: k, Name: v})
		}
	}
	for k, v := range s.collective {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, HolidayEntry{Date: k, Name: v, IsCollectiveLeave: true})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// HolidayName returns the listed name for t, checking national holidays
// first, then cuti bersama.
func (s *HolidaySet) HolidayName(t time.Time) (string, bool) {
	key := DateKey(t)
	if name, ok := s.national[key]; ok {
		return name, true
	}
	if name, ok := s.collective[key]; ok {
		return name, true
	}
	return "", false
}
