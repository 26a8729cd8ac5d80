package events

import "time"

const LeaveLifecycleTopic = "simpeg.leave.lifecycle.v1"

// Jenis kejadian siklus hidup cuti yang memicu hitung ulang kuota.
const (
	LeaveCreated  = "leave_created"
	LeaveUpdated  = "leave_updated"
	LeaveApproved = "leave_approved"
	LeaveRejected = "leave_rejected"
	LeaveDeleted  = "leave_deleted"
)

type LeaveLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	FiscalYear int       `json:"fiscal_year"`
	OccurredAt time.Time `json:"occurred_at"`
}
