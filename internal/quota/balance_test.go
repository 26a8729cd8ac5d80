package quota_test

import (
	"testing"

	"go-simpeg/internal/quota"

	"github.com/stretchr/testify/assert"
)

func TestRebalance(t *testing.T) {
	base := func() quota.LeaveQuota {
		return quota.LeaveQuota{
			Year:                  2024,
			AnnualQuota:           quota.DefaultAnnualQuota,
			PreviousYearRemaining: 3,
			ServiceYears:          10,
		}
	}

	t.Run("annual usage reduces remaining and total", func(t *testing.T) {
		got := quota.Rebalance(base(), []quota.LeaveUsage{
			{LeaveType: "ANNUAL", DurationDays: 3},
			{LeaveType: "ANNUAL", DurationDays: 2},
		})

		assert.Equal(t, 12, got.AnnualQuota)
		assert.Equal(t, 5, got.AnnualUsed)
		assert.Equal(t, 7, got.AnnualRemaining)
		assert.Equal(t, 10, got.TotalAvailable)
		assert.False(t, got.BigLeaveStatus)
		assert.True(t, got.BigLeaveEligible)
	})

	t.Run("empty usage restores policy defaults", func(t *testing.T) {
		q := base()
		q.AnnualUsed = 9
		q.AnnualQuota = 0
		q.BigLeaveStatus = true

		got := quota.Rebalance(q, nil)

		assert.Equal(t, 12, got.AnnualQuota)
		assert.Equal(t, 0, got.AnnualUsed)
		assert.Equal(t, 12, got.AnnualRemaining)
		assert.Equal(t, 15, got.TotalAvailable)
		assert.False(t, got.BigLeaveStatus)
		assert.Nil(t, got.LastBigLeaveYear)
	})

	t.Run("big leave locks annual quota", func(t *testing.T) {
		got := quota.Rebalance(base(), []quota.LeaveUsage{
			{LeaveType: "BESAR", DurationDays: 60},
			{LeaveType: "ANNUAL", DurationDays: 2},
		})

		assert.Equal(t, 0, got.AnnualQuota)
		assert.Equal(t, 2, got.AnnualUsed)
		assert.Equal(t, -2, got.AnnualRemaining)
		assert.Equal(t, 1, got.TotalAvailable)
		assert.True(t, got.BigLeaveStatus)
		assert.False(t, got.BigLeaveEligible)
		if assert.NotNil(t, got.LastBigLeaveYear) {
			assert.Equal(t, 2024, *got.LastBigLeaveYear)
		}
	})

	t.Run("removing big leave restores the default quota", func(t *testing.T) {
		locked := quota.Rebalance(base(), []quota.LeaveUsage{{LeaveType: "BESAR", DurationDays: 60}})
		assert.True(t, locked.BigLeaveStatus)

		restored := quota.Rebalance(locked, []quota.LeaveUsage{{LeaveType: "ANNUAL", DurationDays: 1}})

		assert.Equal(t, 12, restored.AnnualQuota)
		assert.Equal(t, 11, restored.AnnualRemaining)
		assert.False(t, restored.BigLeaveStatus)
		assert.Nil(t, restored.LastBigLeaveYear)
	})

	t.Run("negative remaining is never clamped", func(t *testing.T) {
		got := quota.Rebalance(base(), []quota.LeaveUsage{
			{LeaveType: "ANNUAL", DurationDays: 20},
		})

		assert.Equal(t, -8, got.AnnualRemaining)
		assert.Equal(t, -5, got.TotalAvailable)
	})

	t.Run("per-type counters recomputed as sums", func(t *testing.T) {
		got := quota.Rebalance(base(), []quota.LeaveUsage{
			{LeaveType: "SICK", DurationDays: 4},
			{LeaveType: "SICK", DurationDays: 1},
			{LeaveType: "MATERNITY", DurationDays: 90},
			{LeaveType: "IMPORTANT_REASON", DurationDays: 7},
		})

		assert.Equal(t, 5, got.SickUsed)
		assert.Equal(t, 90, got.MaternityUsed)
		assert.Equal(t, 7, got.ImportantReasonUsed)
		// Jenis non-ANNUAL tidak memengaruhi sisa cuti tahunan.
		assert.Equal(t, 0, got.AnnualUsed)
		assert.Equal(t, 12, got.AnnualRemaining)
		assert.Equal(t, 15, got.TotalAvailable)
	})

	t.Run("idempotent over the same inputs", func(t *testing.T) {
		usages := []quota.LeaveUsage{
			{LeaveType: "ANNUAL", DurationDays: 5},
			{LeaveType: "SICK", DurationDays: 2},
		}

		once := quota.Rebalance(base(), usages)
		twice := quota.Rebalance(once, usages)

		assert.Equal(t, once, twice)
	})

	t.Run("eligibility needs minimum service years", func(t *testing.T) {
		q := base()
		q.ServiceYears = 4

		got := quota.Rebalance(q, nil)

		assert.False(t, got.BigLeaveEligible)
	})

	t.Run("unknown leave type is ignored", func(t *testing.T) {
		got := quota.Rebalance(base(), []quota.LeaveUsage{
			{LeaveType: "CLTN", DurationDays: 200},
		})

		assert.Equal(t, 0, got.AnnualUsed)
		assert.Equal(t, 12, got.AnnualRemaining)
	})
}
