package models

import "time"

// DefaultJobStage is the stage of a job created without one.
const DefaultJobStage = "saved"

// Job is a tracked job posting, the primary entity of the store.
type Job struct {
	Base
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	URL          string   `json:"url"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Requirements []string `json:"requirements"`
	Stage        string   `json:"stage"`
	Notes        string   `json:"notes"`
	Tags         []string `json:"tags"`
	AppliedDate  string   `json:"applied_date"`
}

// JobFields is the optional input for creating or updating a Job.
type JobFields struct {
	Title        *string   `json:"title"`
	Company      *string   `json:"company"`
	URL          *string   `json:"url"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Salary       *string   `json:"salary"`
	Requirements *[]string `json:"requirements"`
	Stage        *string   `json:"stage"`
	Notes        *string   `json:"notes"`
	Tags         *[]string `json:"tags"`
	AppliedDate  *string   `json:"applied_date"`
}

// NewJob builds a Job stamped with now, filling defaults for nil fields.
func NewJob(id string, now time.Time, f JobFields) Job {
	return Job{
		Base:         newBase(id, now),
		Title:        valueOr(f.Title, ""),
		Company:      valueOr(f.Company, ""),
		URL:          valueOr(f.URL, ""),
		Description:  valueOr(f.Description, ""),
		Location:     valueOr(f.Location, ""),
		Salary:       valueOr(f.Salary, ""),
		Requirements: listOr(f.Requirements),
		Stage:        valueOr(f.Stage, DefaultJobStage),
		Notes:        valueOr(f.Notes, ""),
		Tags:         listOr(f.Tags),
		AppliedDate:  valueOr(f.AppliedDate, ""),
	}
}
