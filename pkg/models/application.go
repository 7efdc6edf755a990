package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Application statuses
const (
	ApplicationStatusApplied   = "Applied"
	ApplicationStatusScheduled = "Interview Scheduled"
	ApplicationStatusQualified = "Qualified"
	ApplicationStatusRejected  = "Rejected"
	ApplicationStatusOffer     = "Offer"
	ApplicationStatusJoined    = "Joined"
)

// Application links a candidate to a job. References are advisory: IDs are
// preferred, denormalized names are kept for UI convenience and resolved
// best-effort at create time.
type Application struct {
	Record
	CandidateID   string `json:"candidate_id,omitempty"`
	CandidateName string `json:"candidate_name,omitempty"`
	JobID         string `json:"job_id,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	Company       string `json:"company,omitempty"`

	Status     string `json:"status"`
	SourcedBy  string `json:"sourced_by,omitempty"`
	SourcedFrom string `json:"sourced_from,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`

	AppliedOn string `json:"applied_on,omitempty"` // YYYY-MM-DD
	Comments  string `json:"comments,omitempty"`
}

// Normalize trims the denormalized reference names and applies the default status
func (a *Application) Normalize() {
	a.CandidateName = strings.TrimSpace(a.CandidateName)
	a.JobTitle = strings.TrimSpace(a.JobTitle)
	a.Company = strings.TrimSpace(a.Company)
	if a.Status == "" {
		a.Status = ApplicationSchema.DefaultStatus()
	}
}

// Validate checks that at least one candidate reference is present and the
// status is a member of the enum
func (a *Application) Validate() error {
	if a.CandidateID == "" && a.CandidateName == "" {
		return &FieldError{Resource: "application", Field: "candidate", Detail: "candidate_id or candidate_name is required"}
	}
	if !ApplicationSchema.ValidStatus(a.Status) {
		return statusError("application", a.Status)
	}
	return nil
}

// ParseApplication is the parse-and-validate boundary for raw application JSON
func ParseApplication(data []byte) (*Application, error) {
	var app Application
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("malformed application payload: %w", err)
	}
	app.Normalize()
	if err := app.Validate(); err != nil {
		return nil, err
	}
	return &app, nil
}

// ApplicationSchema parameterizes the generic adapter/sync/API layers for applications
var ApplicationSchema = Schema[*Application]{
	Name: "applications",
	New:  func() *Application { return &Application{} },
	SearchText: func(a *Application) string {
		return searchJoin(a.CandidateName, a.JobTitle, a.Company)
	},
	Status: func(a *Application) string { return a.Status },
	Statuses: []string{
		ApplicationStatusApplied,
		ApplicationStatusScheduled,
		ApplicationStatusQualified,
		ApplicationStatusRejected,
		ApplicationStatusOffer,
		ApplicationStatusJoined,
	},
}
