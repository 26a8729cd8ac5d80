package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis cuti sesuai PP 11/2017 tentang Manajemen PNS.
const (
	TypeAnnual          = "ANNUAL"
	TypeSick            = "SICK"
	TypeBigLeave        = "BESAR"
	TypeMaternity       = "MATERNITY"
	TypeImportantReason = "IMPORTANT_REASON"
	TypeUnpaid          = "CLTN" // cuti di luar tanggungan negara
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

// Regulation is the per-type rule row: the longest allowed duration in
// working days and the minimum service years before the type may be taken.
type Regulation struct {
	MaxDurationDays int
	MinServiceYears int
}

// Regulations indexes the rule table by leave type.
var Regulations = map[string]Regulation{
	TypeAnnual:          {MaxDurationDays: 12},
	TypeSick:            {MaxDurationDays: 365},
	TypeBigLeave:        {MaxDurationDays: 90, MinServiceYears: 5},
	TypeMaternity:       {MaxDurationDays: 90},
	TypeImportantReason: {MaxDurationDays: 30},
	TypeUnpaid:          {MaxDurationDays: 1095, MinServiceYears: 5},
}

// Leave adalah satu pengajuan cuti pegawai. DurationDays selalu diturunkan
// dari rentang tanggal lewat kalender kerja, tidak pernah dipercaya dari
// input.
type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType    string    `gorm:"type:varchar(30);not null;default:'ANNUAL'"`
	StartDate    time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate      time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	DurationDays int       `gorm:"not null;default:1"`
	FiscalYear   int       `gorm:"not null;index:idx_leaves_fiscal_year"`
	Reason       string    `gorm:"type:text"`
	DocumentURL  *string   `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}

// ValidType reports whether t is one of the known leave types.
func ValidType(t string) bool {
	_, ok := Regulations[t]
	return ok
}
