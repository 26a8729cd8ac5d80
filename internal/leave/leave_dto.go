package leave

import "go-simpeg/internal/calendar"

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=ANNUAL SICK BESAR MATERNITY IMPORTANT_REASON CLTN"`
	StartDate  string `json:"start_date" binding:"required"`
	// Salah satu dari end_date atau duration_days wajib diisi. Jika dua-duanya
	// ada, rentang tanggal yang dipakai dan durasi dihitung ulang.
	EndDate      string  `json:"end_date"`
	DurationDays *int    `json:"duration_days"`
	Reason       string  `json:"reason"`
	DocumentURL  *string `json:"document_url"`
}

type UpdateLeaveRequest struct {
	LeaveType    string  `json:"leave_type" binding:"required,oneof=ANNUAL SICK BESAR MATERNITY IMPORTANT_REASON CLTN"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date"`
	DurationDays *int    `json:"duration_days"`
	Reason       string  `json:"reason"`
	DocumentURL  *string `json:"document_url"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

// PreviewRequest asks for the duration / end-date reconciliation without
// persisting anything, so the form can show the result while typing.
type PreviewRequest struct {
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date"`
	DurationDays *int   `json:"duration_days"`
}

type PreviewResponse struct {
	StartDate             string                   `json:"start_date"`
	EndDate               string                   `json:"end_date"`
	DurationDays          int                      `json:"duration_days"`
	StartsOnNonWorkingDay bool                     `json:"starts_on_non_working_day"`
	ExcludedDays          []calendar.NonWorkingDay `json:"excluded_days"`
}

type LeaveResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	LeaveType             string  `json:"leave_type"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	DurationDays          int     `json:"duration_days"`
	FiscalYear            int     `json:"fiscal_year"`
	Reason                string  `json:"reason"`
	DocumentURL           *string `json:"document_url,omitempty"`
	Status                string  `json:"status"`
	CreatedBy             string  `json:"created_by"`
	ApprovedBy            *string `json:"approved_by,omitempty"`
	ApprovedAt            *string `json:"approved_at,omitempty"`
	RejectionReason       *string `json:"rejection_reason,omitempty"`
	StartsOnNonWorkingDay bool    `json:"starts_on_non_working_day"`
}
