package models

import "time"

// PartnershipStatus is the state of a research partnership.
type PartnershipStatus string

// Partnership statuses.
const (
	PartnershipActive   PartnershipStatus = "active"
	PartnershipPending  PartnershipStatus = "pending"
	PartnershipInactive PartnershipStatus = "inactive"
)

// DataSharingAgreement is a signed (or pending) data exchange agreement with an institution.
type DataSharingAgreement struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	SignedAt *time.Time `json:"signed_at"`
}

// ResearchInstitution represents an international research partner.
// ResearchAreas keeps insertion order and never holds duplicates added through the service.
type ResearchInstitution struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name"`
	Country               string                 `json:"country"`
	WebsiteURL            string                 `json:"website_url"`
	ContactEmail          string                 `json:"contact_email"`
	ResearchAreas         []string               `json:"research_areas"`
	PartnershipStatus     PartnershipStatus      `json:"partnership_status"`
	EstablishedAt         time.Time              `json:"established_at"`
	DataSharingAgreements []DataSharingAgreement `json:"data_sharing_agreements"`
}
