package models

import "time"

// Company describes an employer. Jobs and contacts refer to it by name only.
type Company struct {
	Base
	Name         string    `json:"name"`
	Domain       string    `json:"domain"`
	Industry     string    `json:"industry"`
	Size         string    `json:"size"`
	FundingStage string    `json:"funding_stage"`
	Rating       *float64  `json:"rating"`
	Location     string    `json:"location"`
	Website      string    `json:"website"`
	Notes        string    `json:"notes"`
	LastUpdated  time.Time `json:"last_updated"`
}

// CompanyFields is the optional input for creating or updating a Company.
type CompanyFields struct {
	Name         *string  `json:"name"`
	Domain       *string  `json:"domain"`
	Industry     *string  `json:"industry"`
	Size         *string  `json:"size"`
	FundingStage *string  `json:"funding_stage"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Location     *string  `json:"location"`
	Website      *string  `json:"website"`
	Notes        *string  `json:"notes"`
}

// NewCompany builds a Company stamped with now. LastUpdated starts equal to
// CreatedAt.
func NewCompany(id string, now time.Time, f CompanyFields) Company {
	b := newBase(id, now)
	return Company{
		Base:         b,
		Name:         valueOr(f.Name, ""),
		Domain:       valueOr(f.Domain, ""),
		Industry:     valueOr(f.Industry, ""),
		Size:         valueOr(f.Size, ""),
		FundingStage: valueOr(f.FundingStage, ""),
		Rating:       clonePtr(f.Rating),
		Location:     valueOr(f.Location, ""),
		Website:      valueOr(f.Website, ""),
		Notes:        valueOr(f.Notes, ""),
		LastUpdated:  b.CreatedAt,
	}
}
