package quota

import "go-simpeg/internal/leave"

// Rebalance recomputes a quota snapshot from the full set of leave usages for
// its (employee, year). Pure and idempotent: running it twice over the same
// inputs yields an identical snapshot, so replays from the event consumer are
// harmless.
//
// Rules:
//   - annual used is the sum of ANNUAL durations; remaining may go negative,
//     over-allocation is surfaced at submission time, never clamped here.
//   - any BESAR record locks the year: annual quota drops to 0 until the
//     record disappears, after which the policy default is restored.
//   - sick/maternity/important-reason counters are recomputed as plain sums
//     and do not feed into total available.
func Rebalance(q LeaveQuota, usages []LeaveUsage) LeaveQuota {
	q.AnnualUsed = 0
	q.SickUsed = 0
	q.MaternityUsed = 0
	q.ImportantReasonUsed = 0

	bigLeaveTaken := false
	for _, u := range usages {
		switch u.LeaveType {
		case leave.TypeAnnual:
			q.AnnualUsed += u.DurationDays
		case leave.TypeSick:
			q.SickUsed += u.DurationDays
		case leave.TypeMaternity:
			q.MaternityUsed += u.DurationDays
		case leave.TypeImportantReason:
			q.ImportantReasonUsed += u.DurationDays
		case leave.TypeBigLeave:
			bigLeaveTaken = true
		}
	}

	if bigLeaveTaken {
		q.AnnualQuota = 0
		q.BigLeaveStatus = true
		year := q.Year
		q.LastBigLeaveYear = &year
	} else {
		q.AnnualQuota = DefaultAnnualQuota
		q.BigLeaveStatus = false
		q.LastBigLeaveYear = nil
	}

	q.AnnualRemaining = q.AnnualQuota - q.AnnualUsed
	q.TotalAvailable = q.AnnualRemaining + q.PreviousYearRemaining
	q.BigLeaveEligible = q.ServiceYears >= BigLeaveMinServiceYears && !q.BigLeaveStatus

	return q
}
