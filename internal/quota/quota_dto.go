package quota

type QuotaResponse struct {
	EmployeeID            string `json:"employee_id"`
	Year                  int    `json:"year"`
	AnnualQuota           int    `json:"annual_quota"`
	AnnualUsed            int    `json:"annual_used"`
	AnnualRemaining       int    `json:"annual_remaining"`
	PreviousYearRemaining int    `json:"previous_year_remaining"`
	TotalAvailable        int    `json:"total_available"`
	ServiceYears          int    `json:"service_years"`
	BigLeaveEligible      bool   `json:"big_leave_eligible"`
	BigLeaveStatus        bool   `json:"big_leave_status"`
	LastBigLeaveYear      *int   `json:"last_big_leave_year,omitempty"`
	SickUsed              int    `json:"sick_used"`
	MaternityUsed         int    `json:"maternity_used"`
	ImportantReasonUsed   int    `json:"important_reason_used"`
}

func mapToResponse(q LeaveQuota) QuotaResponse {
	return QuotaResponse{
		EmployeeID:            q.EmployeeID.String(),
		Year:                  q.Year,
		AnnualQuota:           q.AnnualQuota,
		AnnualUsed:            q.AnnualUsed,
		AnnualRemaining:       q.AnnualRemaining,
		PreviousYearRemaining: q.PreviousYearRemaining,
		TotalAvailable:        q.TotalAvailable,
		ServiceYears:          q.ServiceYears,
		BigLeaveEligible:      q.BigLeaveEligible,
		BigLeaveStatus:        q.BigLeaveStatus,
		LastBigLeaveYear:      q.LastBigLeaveYear,
		SickUsed:              q.SickUsed,
		MaternityUsed:         q.MaternityUsed,
		ImportantReasonUsed:   q.ImportantReasonUsed,
	}
}
