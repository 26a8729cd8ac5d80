package quota

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAnnualQuota adalah jatah cuti tahunan PNS sesuai PP 11/2017.
const DefaultAnnualQuota = 12

// BigLeaveMinServiceYears is the minimum continuous service before an
// employee becomes eligible for cuti besar.
const BigLeaveMinServiceYears = 5

// LeaveQuota is one employee's balance snapshot for a single year. It is
// created lazily on first reference and mutated only through Rebalance.
type LeaveQuota struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_quotas_employee_year"`
	Year       int       `gorm:"not null;uniqueIndex:uq_leave_quotas_employee_year"`

	AnnualQuota           int `gorm:"not null;default:12"`
	AnnualUsed            int `gorm:"not null;default:0"`
	AnnualRemaining       int `gorm:"not null;default:12"`
	PreviousYearRemaining int `gorm:"not null;default:0"`
	TotalAvailable        int `gorm:"not null;default:12"`

	ServiceYears     int  `gorm:"not null;default:0"`
	BigLeaveEligible bool `gorm:"not null;default:false"`
	BigLeaveStatus   bool `gorm:"not null;default:false"`
	LastBigLeaveYear *int

	// Pemakaian per jenis, hanya untuk pelaporan.
	SickUsed            int `gorm:"not null;default:0"`
	MaternityUsed       int `gorm:"not null;default:0"`
	ImportantReasonUsed int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveUsage is the slice of a leave record the balancer needs: its type and
// its working-day duration.
type LeaveUsage struct {
	LeaveType    string
	DurationDays int
}
