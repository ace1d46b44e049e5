package models

import "time"

// DefaultSessionCategory is the category of a session created without one.
const DefaultSessionCategory = "behavioral"

// InterviewSession is one practice interview: questions asked, answers
// given, and the resulting feedback and score.
type InterviewSession struct {
	Base
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	Category  string   `json:"category"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
	Feedback  string   `json:"feedback"`
	Score     *int64   `json:"score"`
}

// InterviewSessionFields is the optional input for creating or updating an
// InterviewSession.
type InterviewSessionFields struct {
	Company   *string   `json:"company"`
	Role      *string   `json:"role"`
	Category  *string   `json:"category"`
	Questions *[]string `json:"questions"`
	Answers   *[]string `json:"answers"`
	Feedback  *string   `json:"feedback"`
	Score     *int64    `json:"score" validate:"omitempty,gte=0"`
}

// NewInterviewSession builds a session stamped with now; lists default to empty.
func NewInterviewSession(id string, now time.Time, f InterviewSessionFields) InterviewSession {
	return InterviewSession{
		Base:      newBase(id, now),
		Company:   valueOr(f.Company, ""),
		Role:      valueOr(f.Role, ""),
		Category:  valueOr(f.Category, DefaultSessionCategory),
		Questions: listOr(f.Questions),
		Answers:   listOr(f.Answers),
		Feedback:  valueOr(f.Feedback, ""),
		Score:     clonePtr(f.Score),
	}
}
