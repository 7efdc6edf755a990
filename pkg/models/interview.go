package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Interview statuses
const (
	InterviewStatusScheduled   = "Scheduled"
	InterviewStatusQualified   = "Completed-Qualified"
	InterviewStatusRejected    = "Completed-Rejected"
	InterviewStatusRescheduled = "Rescheduled"
	InterviewStatusNoShow      = "No Show"
	InterviewStatusCancelled   = "Cancelled"
)

// Interview is one round of interviewing for an application, a top-level
// resource keyed by application_id
type Interview struct {
	Record
	ApplicationID string `json:"application_id,omitempty"`
	CandidateName string `json:"candidate_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	Round         int    `json:"round,omitempty"`
	Date          string `json:"date,omitempty"` // YYYY-MM-DD
	Time          string `json:"time,omitempty"` // HH:MM
	Status        string `json:"status"`
	Feedback      string `json:"feedback,omitempty"`
}

// Normalize trims the denormalized names and applies the default status
func (i *Interview) Normalize() {
	i.CandidateName = strings.TrimSpace(i.CandidateName)
	i.JobTitle = strings.TrimSpace(i.JobTitle)
	if i.Status == "" {
		i.Status = InterviewSchema.DefaultStatus()
	}
}

// Validate checks status enum membership
func (i *Interview) Validate() error {
	if !InterviewSchema.ValidStatus(i.Status) {
		return statusError("interview", i.Status)
	}
	return nil
}

// ParseInterview is the parse-and-validate boundary for raw interview JSON
func ParseInterview(data []byte) (*Interview, error) {
	var iv Interview
	if err := json.Unmarshal(data, &iv); err != nil {
		return nil, fmt.Errorf("malformed interview payload: %w", err)
	}
	iv.Normalize()
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	return &iv, nil
}

// InterviewSchema parameterizes the generic adapter/sync/API layers for interviews
var InterviewSchema = Schema[*Interview]{
	Name: "interviews",
	New:  func() *Interview { return &Interview{} },
	SearchText: func(i *Interview) string {
		return searchJoin(i.CandidateName, i.JobTitle)
	},
	Status: func(i *Interview) string { return i.Status },
	Statuses: []string{
		InterviewStatusScheduled,
		InterviewStatusQualified,
		InterviewStatusRejected,
		InterviewStatusRescheduled,
		InterviewStatusNoShow,
		InterviewStatusCancelled,
	},
}
