package employee

import "go-simpeg/internal/calendar"

type CreateEmployeeRequest struct {
	NIP            string  `json:"nip"`
	FullName       string  `json:"full_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	BirthPlace     string  `json:"birth_place"`
	BirthDate      string  `json:"birth_date"`
	Gender         string  `json:"gender" binding:"omitempty,oneof=L P"`
	PhotoURL       *string `json:"photo_url"`
	EmploymentType string  `json:"employment_type" binding:"required,oneof=PNS PPPK HONORER"`
	Rank           string  `json:"rank"`
	Position       string  `json:"position"`
	WorkUnit       string  `json:"work_unit"`
	HireDate       string  `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	BirthPlace     string  `json:"birth_place"`
	BirthDate      string  `json:"birth_date"`
	Gender         string  `json:"gender" binding:"omitempty,oneof=L P"`
	PhotoURL       *string `json:"photo_url"`
	EmploymentType string  `json:"employment_type" binding:"required,oneof=PNS PPPK HONORER"`
	Rank           string  `json:"rank"`
	Position       string  `json:"position"`
	WorkUnit       string  `json:"work_unit"`
	HireDate       string  `json:"hire_date" binding:"required"`
}

type AddEducationRequest struct {
	Level       string `json:"level" binding:"required,oneof=SD SMP SMA D3 D4 S1 S2 S3"`
	Institution string `json:"institution"`
	Major       string `json:"major"`
	GradYear    int    `json:"grad_year"`
}

type AddRankHistoryRequest struct {
	Rank          string `json:"rank" binding:"required"`
	Position      string `json:"position"`
	EffectiveDate string `json:"effective_date" binding:"required"`
	DecreeNumber  string `json:"decree_number"`
}

// EmployeeOption adalah entri ringkas untuk dropdown pemilihan pegawai.
type EmployeeOption struct {
	ID       string `json:"id"`
	NIP      string `json:"nip"`
	FullName string `json:"full_name"`
}

type EducationResponse struct {
	ID          string `json:"id"`
	Level       string `json:"level"`
	Institution string `json:"institution"`
	Major       string `json:"major"`
	GradYear    int    `json:"grad_year"`
}

type RankHistoryResponse struct {
	ID            string `json:"id"`
	Rank          string `json:"rank"`
	Position      string `json:"position"`
	EffectiveDate string `json:"effective_date"`
	DecreeNumber  string `json:"decree_number"`
}

type EmployeeResponse struct {
	ID             string                `json:"id"`
	NIP            string                `json:"nip"`
	FullName       string                `json:"full_name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone,omitempty"`
	BirthPlace     string                `json:"birth_place,omitempty"`
	BirthDate      string                `json:"birth_date,omitempty"`
	Gender         string                `json:"gender,omitempty"`
	PhotoURL       *string               `json:"photo_url,omitempty"`
	EmploymentType string                `json:"employment_type"`
	Rank           string                `json:"rank,omitempty"`
	Position       string                `json:"position,omitempty"`
	WorkUnit       string                `json:"work_unit,omitempty"`
	HireDate       string                `json:"hire_date"`
	ServiceYears   int                   `json:"service_years"`
	Educations     []EducationResponse   `json:"educations,omitempty"`
	RankHistories  []RankHistoryResponse `json:"rank_histories,omitempty"`
}

func mapToResponse(e Employee, asOfYear int) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		NIP:            e.NIP,
		FullName:       e.FullName,
		Email:          e.Email,
		Phone:          e.Phone,
		BirthPlace:     e.BirthPlace,
		Gender:         e.Gender,
		PhotoURL:       e.PhotoURL,
		EmploymentType: e.EmploymentType,
		Rank:           e.Rank,
		Position:       e.Position,
		WorkUnit:       e.WorkUnit,
		HireDate:       calendar.DateKey(e.HireDate),
		ServiceYears:   e.ServiceYearsAt(asOfYear),
	}
	if e.BirthDate != nil {
		resp.BirthDate = calendar.DateKey(*e.BirthDate)
	}
	for _, ed := range e.Educations {
		resp.Educations = append(resp.Educations, EducationResponse{
			ID:          ed.ID.String(),
			Level:       ed.Level,
			Institution: ed.Institution,
			Major:       ed.Major,
			GradYear:    ed.GradYear,
		})
	}
	for _, rh := range e.RankHistories {
		resp.RankHistories = append(resp.RankHistories, RankHistoryResponse{
			ID:            rh.ID.String(),
			Rank:          rh.Rank,
			Position:      rh.Position,
			EffectiveDate: calendar.DateKey(rh.EffectiveDate),
			DecreeNumber:  rh.DecreeNumber,
		})
	}
	return resp
}
