package models

import "time"

const (
	DefaultOfferStatus = "pending"

	// offerBenefitsMultiplier is the flat uplift applied to base salary when
	// estimating an offer's total value.
	offerBenefitsMultiplier = 1.2
	offerCalculationNote    = "Estimated total value including benefits"
)

// Offer is a received offer. JobID is a soft reference: it is neither
// checked on write nor cleared when the job is deleted.
type Offer struct {
	Base
	JobID            string `json:"job_id"`
	Company          string `json:"company"`
	BaseSalary       *int64 `json:"base_salary"`
	Bonus            string `json:"bonus"`
	Equity           string `json:"equity"`
	Benefits         string `json:"benefits"`
	StartDate        string `json:"start_date"`
	NegotiationNotes string `json:"negotiation_notes"`
	Status           string `json:"status"`
}

// OfferFields is the optional input for creating or updating an Offer.
type OfferFields struct {
	JobID            *string `json:"job_id"`
	Company          *string `json:"company"`
	BaseSalary       *int64  `json:"base_salary" validate:"omitempty,gte=0"`
	Bonus            *string `json:"bonus"`
	Equity           *string `json:"equity"`
	Benefits         *string `json:"benefits"`
	StartDate        *string `json:"start_date"`
	NegotiationNotes *string `json:"negotiation_notes"`
	Status           *string `json:"status"`
}

// NewOffer builds an Offer stamped with now; Status defaults to pending.
func NewOffer(id string, now time.Time, f OfferFields) Offer {
	return Offer{
		Base:             newBase(id, now),
		JobID:            valueOr(f.JobID, ""),
		Company:          valueOr(f.Company, ""),
		BaseSalary:       clonePtr(f.BaseSalary),
		Bonus:            valueOr(f.Bonus, ""),
		Equity:           valueOr(f.Equity, ""),
		Benefits:         valueOr(f.Benefits, ""),
		StartDate:        valueOr(f.StartDate, ""),
		NegotiationNotes: valueOr(f.NegotiationNotes, ""),
		Status:           valueOr(f.Status, DefaultOfferStatus),
	}
}

// OfferValuation is the result of estimating an offer's total value.
type OfferValuation struct {
	OfferID             string  `json:"offer_id"`
	BaseSalary          int64   `json:"base_salary"`
	EstimatedTotalValue float64 `json:"estimated_total_value"`
	CalculationNote     string  `json:"calculation_note"`
}

// Valuate estimates the offer's total value. A missing base salary counts as 0.
func (o Offer) Valuate() OfferValuation {
	base := valueOr(o.BaseSalary, 0)
	return OfferValuation{
		OfferID:             o.ID,
		BaseSalary:          base,
		EstimatedTotalValue: float64(base) * offerBenefitsMultiplier,
		CalculationNote:     offerCalculationNote,
	}
}
