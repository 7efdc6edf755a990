package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Offer-letter flag values for selected candidates
const (
	OfferLetterYes = "Yes"
	OfferLetterNo  = "No"
)

// SelectedCandidate tracks a candidate who received an offer. It references
// its source application but is deliberately decoupled from it: edits or
// deletes on the application do not cascade here.
type SelectedCandidate struct {
	Record
	ApplicationID string `json:"application_id,omitempty"`
	CandidateName string `json:"candidate_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	Company       string `json:"company,omitempty"`
	SelectedDate  string `json:"selected_date,omitempty"` // YYYY-MM-DD
	OfferLetter   string `json:"offer_letter"`
	JoiningDate   string `json:"joining_date,omitempty"` // YYYY-MM-DD
}

// Normalize trims the denormalized names and defaults the offer-letter flag
func (s *SelectedCandidate) Normalize() {
	s.CandidateName = strings.TrimSpace(s.CandidateName)
	if s.OfferLetter == "" {
		s.OfferLetter = SelectedCandidateSchema.DefaultStatus()
	}
}

// Validate checks the offer-letter flag
func (s *SelectedCandidate) Validate() error {
	if !SelectedCandidateSchema.ValidStatus(s.OfferLetter) {
		return &FieldError{Resource: "selected_candidate", Field: "offer_letter", Detail: "must be Yes or No"}
	}
	return nil
}

// ParseSelectedCandidate is the parse-and-validate boundary for raw JSON
func ParseSelectedCandidate(data []byte) (*SelectedCandidate, error) {
	var sel SelectedCandidate
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("malformed selected-candidate payload: %w", err)
	}
	sel.Normalize()
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	return &sel, nil
}

// JoinedCandidate tracks a placed candidate through their guaranteed tenure
// period. remaining_days is computed at read time and never stored.
type JoinedCandidate struct {
	Record
	ApplicationID string `json:"application_id,omitempty"`
	CandidateName string `json:"candidate_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	Company       string `json:"company,omitempty"`
	JoinedDate    string `json:"joined_date,omitempty"` // YYYY-MM-DD
	TenureDays    int    `json:"tenure_days,omitempty"`
	InvoiceNo     string `json:"invoice_no,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"` // YYYY-MM-DD
}

// Normalize trims the denormalized names
func (j *JoinedCandidate) Normalize() {
	j.CandidateName = strings.TrimSpace(j.CandidateName)
}

// Validate checks the tenure length is not negative
func (j *JoinedCandidate) Validate() error {
	if j.TenureDays < 0 {
		return &FieldError{Resource: "joined_candidate", Field: "tenure_days", Detail: "must not be negative"}
	}
	return nil
}

// ParseJoinedCandidate is the parse-and-validate boundary for raw JSON
func ParseJoinedCandidate(data []byte) (*JoinedCandidate, error) {
	var joined JoinedCandidate
	if err := json.Unmarshal(data, &joined); err != nil {
		return nil, fmt.Errorf("malformed joined-candidate payload: %w", err)
	}
	joined.Normalize()
	if err := joined.Validate(); err != nil {
		return nil, err
	}
	return &joined, nil
}

// RemainingTenure returns tenure_days minus the whole days elapsed since
// joined_date as of now, floored at zero. A missing or malformed joined_date
// yields the full tenure.
func (j *JoinedCandidate) RemainingTenure(now time.Time) int {
	joined, err := time.Parse(DateLayout, j.JoinedDate)
	if err != nil {
		return j.TenureDays
	}
	elapsed := int(now.Sub(joined).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := j.TenureDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SelectedCandidateSchema parameterizes the generic layers for selected
// candidates; the offer-letter flag doubles as the status dimension.
var SelectedCandidateSchema = Schema[*SelectedCandidate]{
	Name: "selected-candidates",
	New:  func() *SelectedCandidate { return &SelectedCandidate{} },
	SearchText: func(s *SelectedCandidate) string {
		return searchJoin(s.CandidateName, s.JobTitle, s.Company)
	},
	Status:      func(s *SelectedCandidate) string { return s.OfferLetter },
	Statuses:    []string{OfferLetterNo, OfferLetterYes},
	StatusField: "offer_letter",
}

// JoinedCandidateSchema parameterizes the generic layers for joined candidates.
// Joined rows have no workflow status, so the status dimension is empty.
var JoinedCandidateSchema = Schema[*JoinedCandidate]{
	Name: "joined-candidates",
	New:  func() *JoinedCandidate { return &JoinedCandidate{} },
	SearchText: func(j *JoinedCandidate) string {
		return searchJoin(j.CandidateName, j.JobTitle, j.Company, j.InvoiceNo)
	},
	Status:   func(j *JoinedCandidate) string { return "" },
	Statuses: nil,
}
