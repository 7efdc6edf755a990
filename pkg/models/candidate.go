package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Candidate statuses mirror the recruitment funnel
const (
	CandidateStatusApplied   = "Applied"
	CandidateStatusScreening = "Screening"
	CandidateStatusInterview = "Interview"
	CandidateStatusSelected  = "Selected"
	CandidateStatusRejected  = "Rejected"
	CandidateStatusJoined    = "Joined"
)

// Candidate represents a person in the agency's talent pool
type Candidate struct {
	Record
	FullName    string `json:"full_name" validate:"required"`
	FathersName string `json:"fathers_name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	City        string `json:"city,omitempty"`

	// JobPosition carries the denormalized "title at company" display string
	JobPosition string `json:"job_position,omitempty"`
	Company     string `json:"company,omitempty"`

	Languages                []string `json:"languages,omitempty" gorm:"serializer:json"`
	Skills                   []string `json:"skills,omitempty" gorm:"serializer:json"`
	Education                string   `json:"education,omitempty"`
	PreferredCategories      []string `json:"preferred_categories,omitempty" gorm:"serializer:json"`
	PreferredEmploymentTypes []string `json:"preferred_employment_types,omitempty" gorm:"serializer:json"`
	ExpectedSalary           string   `json:"expected_salary,omitempty"`

	// ResumeFile is the server-assigned attachment name, set on upload
	ResumeFile string `json:"resume_file,omitempty"`

	Status string `json:"status"`
}

// Normalize trims identity fields and applies the default status
func (c *Candidate) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	if c.Status == "" {
		c.Status = CandidateSchema.DefaultStatus()
	}
}

// Validate checks required fields and status enum membership
func (c *Candidate) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !CandidateSchema.ValidStatus(c.Status) {
		return statusError("candidate", c.Status)
	}
	return nil
}

// ParseCandidate is the parse-and-validate boundary for raw candidate JSON,
// including the JSON part of a multipart create/update
func ParseCandidate(data []byte) (*Candidate, error) {
	var cand Candidate
	if err := json.Unmarshal(data, &cand); err != nil {
		return nil, fmt.Errorf("malformed candidate payload: %w", err)
	}
	cand.Normalize()
	if err := cand.Validate(); err != nil {
		return nil, err
	}
	return &cand, nil
}

// CandidateSchema parameterizes the generic adapter/sync/API layers for candidates
var CandidateSchema = Schema[*Candidate]{
	Name: "candidates",
	New:  func() *Candidate { return &Candidate{} },
	SearchText: func(c *Candidate) string {
		return searchJoin(c.FullName, c.Email, c.Phone, c.City, c.JobPosition, c.Company)
	},
	Status: func(c *Candidate) string { return c.Status },
	Statuses: []string{
		CandidateStatusApplied,
		CandidateStatusScreening,
		CandidateStatusInterview,
		CandidateStatusSelected,
		CandidateStatusRejected,
		CandidateStatusJoined,
	},
}
