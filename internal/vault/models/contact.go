package models

import "time"

// Contact is a person in the user's network.
type Contact struct {
	Base
	Name               string `json:"name"`
	Company            string `json:"company"`
	Position           string `json:"position"`
	LinkedInURL        string `json:"linkedin_url"`
	Relationship       string `json:"relationship"`
	ConnectionType     string `json:"connection_type"`
	WarmIntroPotential string `json:"warm_intro_potential"`
	LastContact        string `json:"last_contact"`
	Notes              string `json:"notes"`
}

// ContactFields is the optional input for creating or updating a Contact.
type ContactFields struct {
	Name               *string `json:"name"`
	Company            *string `json:"company"`
	Position           *string `json:"position"`
	LinkedInURL        *string `json:"linkedin_url"`
	Relationship       *string `json:"relationship"`
	ConnectionType     *string `json:"connection_type"`
	WarmIntroPotential *string `json:"warm_intro_potential"`
	LastContact        *string `json:"last_contact"`
	Notes              *string `json:"notes"`
}

// NewContact builds a Contact stamped with now.
func NewContact(id string, now time.Time, f ContactFields) Contact {
	return Contact{
		Base:               newBase(id, now),
		Name:               valueOr(f.Name, ""),
		Company:            valueOr(f.Company, ""),
		Position:           valueOr(f.Position, ""),
		LinkedInURL:        valueOr(f.LinkedInURL, ""),
		Relationship:       valueOr(f.Relationship, ""),
		ConnectionType:     valueOr(f.ConnectionType, ""),
		WarmIntroPotential: valueOr(f.WarmIntroPotential, ""),
		LastContact:        valueOr(f.LastContact, ""),
		Notes:              valueOr(f.Notes, ""),
	}
}
