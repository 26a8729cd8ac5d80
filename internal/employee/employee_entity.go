package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis kepegawaian.
const (
	EmploymentPNS     = "PNS"
	EmploymentPPPK    = "PPPK"
	EmploymentHonorer = "HONORER"
)

type Employee struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NIP string    `gorm:"type:varchar(30);not null;uniqueIndex"`

	FullName       string     `gorm:"type:varchar(150);not null"`
	Email          string     `gorm:"type:varchar(150);uniqueIndex"`
	Phone          string     `gorm:"type:varchar(30)"`
	BirthPlace     string     `gorm:"type:varchar(100)"`
	BirthDate      *time.Time `gorm:"type:date"`
	Gender         string     `gorm:"type:varchar(1)"` // L / P
	PhotoURL       *string    `gorm:"type:text"`
	EmploymentType string     `gorm:"type:varchar(20);not null;default:'PNS'"`

	// Pangkat/golongan dan jabatan berjalan; riwayatnya di RankHistory.
	Rank     string `gorm:"type:varchar(30)"` // contoh: III/a
	Position string `gorm:"type:varchar(150)"`
	WorkUnit string `gorm:"type:varchar(150)"`

	// HireDate adalah TMT CPNS, dasar perhitungan masa kerja.
	HireDate time.Time `gorm:"type:date;not null"`

	Educations    []Education   `gorm:"foreignKey:EmployeeID"`
	RankHistories []RankHistory `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Education struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Level       string `gorm:"type:varchar(20);not null"` // SMA, D3, S1, S2, S3
	Institution string `gorm:"type:varchar(150)"`
	Major       string `gorm:"type:varchar(150)"`
	GradYear    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type RankHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Rank          string    `gorm:"type:varchar(30);not null"`
	Position      string    `gorm:"type:varchar(150)"`
	EffectiveDate time.Time `gorm:"type:date;not null"` // TMT pangkat
	DecreeNumber  string    `gorm:"type:varchar(100)"`  // nomor SK

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceYearsAt menghitung masa kerja penuh pada akhir tahun tertentu.
func (e Employee) ServiceYearsAt(year int) int {
	years := year - e.HireDate.Year()
	if years < 0 {
		return 0
	}
	return years
}
