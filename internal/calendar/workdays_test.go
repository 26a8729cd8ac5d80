package calendar_test

import (
	"testing"
	"time"

	"go-simpeg/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(v)
	assert.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := calendar.ParseDate("2024-04-05")
		assert.NoError(t, err)
		assert.Equal(t, "2024-04-05", calendar.DateKey(d))
	})

	t.Run("malformed input fails fast", func(t *testing.T) {
		for _, v := range []string{"", "05-04-2024", "2024/04/05", "2024-13-01", "besok"} {
			_, err := calendar.ParseDate(v)
			assert.Error(t, err, v)
		}
	})
}

func TestProjectEndDate(t *testing.T) {
	cal := calendar.Indonesia()

	t.Run("single day returns start unchanged", func(t *testing.T) {
		for _, v := range []string{
			"2024-04-05", // Friday
			"2024-04-06", // Saturday
			"2024-04-10", // Idul Fitri
		} {
			start := mustParse(t, v)
			end, err := cal.ProjectEndDate(start, 1)
			assert.NoError(t, err)
			assert.True(t, end.Equal(start), v)
		}
	})

	t.Run("rejects zero or negative count", func(t *testing.T) {
		start := mustParse(t, "2024-04-05")
		_, err := cal.ProjectEndDate(start, 0)
		assert.ErrorIs(t, err, calendar.ErrInvalidWorkingDays)
		_, err = cal.ProjectEndDate(start, -3)
		assert.ErrorIs(t, err, calendar.ErrInvalidWorkingDays)
	})

	t.Run("skips weekend", func(t *testing.T) {
		// Kamis + 2 hari kerja = Jumat
		end, err := cal.ProjectEndDate(mustParse(t, "2024-02-01"), 2)
		assert.NoError(t, err)
		assert.Equal(t, "2024-02-02", calendar.DateKey(end))

		// Jumat + 2 hari kerja: lompat Sabtu-Minggu
		end, err = cal.ProjectEndDate(mustParse(t, "2024-02-02"), 2)
		assert.NoError(t, err)
		assert.Equal(t, "2024-02-05", calendar.DateKey(end))
	})

	t.Run("idul fitri 2024 span", func(t *testing.T) {
		// 5 hari kerja mulai Jumat 2024-04-05: lewati akhir pekan 06-07,
		// cuti bersama 08-09 dan 12, libur nasional 10-11, akhir pekan 13-14.
		end, err := cal.ProjectEndDate(mustParse(t, "2024-04-05"), 5)
		assert.NoError(t, err)
		assert.Equal(t, "2024-04-18", calendar.DateKey(end))
	})

	t.Run("non-working start still consumes one day", func(t *testing.T) {
		// Mulai Sabtu: Sabtu tetap dihitung hari pertama.
		end, err := cal.ProjectEndDate(mustParse(t, "2024-04-06"), 2)
		assert.NoError(t, err)
		assert.Equal(t, "2024-04-15", calendar.DateKey(end))
	})

	t.Run("result is inverse of CountWorkingDays", func(t *testing.T) {
		starts := []string{"2024-04-05", "2024-04-06", "2024-12-20", "2025-03-27", "2023-04-18"}
		for _, v := range starts {
			start := mustParse(t, v)
			for n := 1; n <= 10; n++ {
				end, err := cal.ProjectEndDate(start, n)
				assert.NoError(t, err)
				assert.False(t, end.Before(start))
				assert.Equal(t, n, cal.CountWorkingDays(start, end), "start=%s n=%d", v, n)
			}
		}
	})
}

func TestScanRange(t *testing.T) {
	cal := calendar.Indonesia()

	t.Run("inverted range is vacuous", func(t *testing.T) {
		got := cal.ScanRange(mustParse(t, "2024-04-18"), mustParse(t, "2024-04-05"))
		assert.Empty(t, got)
	})

	t.Run("idul fitri 2024 exclusions", func(t *testing.T) {
		got := cal.ScanRange(mustParse(t, "2024-04-05"), mustParse(t, "2024-04-18"))
		assert.Len(t, got, 9)

		type tag struct{ weekend, holiday, collective bool }
		want := map[string]tag{
			"2024-04-06": {weekend: true},
			"2024-04-07": {weekend: true},
			"2024-04-08": {collective: true},
			"2024-04-09": {collective: true},
			"2024-04-10": {holiday: true},
			"2024-04-11": {holiday: true},
			"2024-04-12": {collective: true},
			"2024-04-13": {weekend: true},
			"2024-04-14": {weekend: true},
		}

		prev := ""
		for _, d := range got {
			key := calendar.DateKey(d.Date)
			w, ok := want[key]
			assert.True(t, ok, "unexpected day %s", key)
			assert.Equal(t, w.weekend, d.IsWeekend, key)
			assert.Equal(t, w.holiday, d.IsHoliday, key)
			assert.Equal(t, w.collective, d.IsCollectiveLeave, key)
			assert.Greater(t, key, prev, "must be ascending")
			prev = key
		}
	})

	t.Run("only tagged days are returned", func(t *testing.T) {
		got := cal.ScanRange(mustParse(t, "2024-01-01"), mustParse(t, "2024-12-31"))
		for _, d := range got {
			assert.True(t, d.IsWeekend || d.IsHoliday || d.IsCollectiveLeave, calendar.DateKey(d.Date))
		}
	})
}

func TestCountWorkingDays(t *testing.T) {
	cal := calendar.Indonesia()

	t.Run("inverted range counts zero", func(t *testing.T) {
		assert.Equal(t, 0, cal.CountWorkingDays(mustParse(t, "2024-04-10"), mustParse(t, "2024-04-05")))
	})

	t.Run("start counted even when non-working", func(t *testing.T) {
		// Sabtu sampai Senin: Sabtu dihitung, Minggu tidak, Senin dihitung.
		got := cal.CountWorkingDays(mustParse(t, "2024-02-03"), mustParse(t, "2024-02-05"))
		assert.Equal(t, 2, got)
	})

	t.Run("full idul fitri window", func(t *testing.T) {
		got := cal.CountWorkingDays(mustParse(t, "2024-04-05"), mustParse(t, "2024-04-18"))
		assert.Equal(t, 5, got)
	})
}
