package report

// LeaveRecapRow adalah satu baris rekap cuti tahunan per pegawai.
type LeaveRecapRow struct {
	EmployeeID            string `json:"employee_id" gorm:"column:employee_id"`
	NIP                   string `json:"nip" gorm:"column:nip"`
	FullName              string `json:"full_name" gorm:"column:full_name"`
	WorkUnit              string `json:"work_unit" gorm:"column:work_unit"`
	AnnualQuota           int    `json:"annual_quota" gorm:"column:annual_quota"`
	AnnualUsed            int    `json:"annual_used" gorm:"column:annual_used"`
	AnnualRemaining       int    `json:"annual_remaining" gorm:"column:annual_remaining"`
	PreviousYearRemaining int    `json:"previous_year_remaining" gorm:"column:previous_year_remaining"`
	TotalAvailable        int    `json:"total_available" gorm:"column:total_available"`
	SickUsed              int    `json:"sick_used" gorm:"column:sick_used"`
	MaternityUsed         int    `json:"maternity_used" gorm:"column:maternity_used"`
	ImportantReasonUsed   int    `json:"important_reason_used" gorm:"column:important_reason_used"`
	BigLeaveStatus        bool   `json:"big_leave_status" gorm:"column:big_leave_status"`
	PendingRequests       int    `json:"pending_requests" gorm:"column:pending_requests"`
}

type LeaveRecapResponse struct {
	Year int             `json:"year"`
	Rows []LeaveRecapRow `json:"rows"`
}
