package models

import "time"

const (
	DefaultAlertFrequency = "daily"

	AlertRunMessage = "Job alert executed (demo mode)"
)

// JobAlert is a saved search.
type JobAlert struct {
	Base
	Name      string     `json:"name"`
	Keywords  string     `json:"keywords"`
	Location  string     `json:"location"`
	Frequency string     `json:"frequency"`
	IsActive  bool       `json:"is_active"`
	LastRun   *time.Time `json:"last_run"`
}

// JobAlertFields is the optional input for creating or updating a JobAlert.
type JobAlertFields struct {
	Name      *string    `json:"name"`
	Keywords  *string    `json:"keywords"`
	Location  *string    `json:"location"`
	Frequency *string    `json:"frequency"`
	IsActive  *bool      `json:"is_active"`
	LastRun   *time.Time `json:"last_run"`
}

// NewJobAlert builds an active daily alert unless f says otherwise.
func NewJobAlert(id string, now time.Time, f JobAlertFields) JobAlert {
	return JobAlert{
		Base:      newBase(id, now),
		Name:      valueOr(f.Name, ""),
		Keywords:  valueOr(f.Keywords, ""),
		Location:  valueOr(f.Location, ""),
		Frequency: valueOr(f.Frequency, DefaultAlertFrequency),
		IsActive:  valueOr(f.IsActive, true),
		LastRun:   utcPtr(f.LastRun),
	}
}

// AlertRun is what running an alert produces. No search backend is wired
// yet, so JobsFound is always empty.
type AlertRun struct {
	Alert     *JobAlert `json:"alert"`
	JobsFound []Job     `json:"jobs_found"`
	Message   string    `json:"message"`
}

// NewAlertRun wraps a freshly stamped alert in a run result.
func NewAlertRun(a *JobAlert) *AlertRun {
	return &AlertRun{Alert: a, JobsFound: []Job{}, Message: AlertRunMessage}
}
