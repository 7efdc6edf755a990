package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Job statuses drive the simple hiring workflow; transitions are unconstrained
const (
	JobStatusAction = "Action"
	JobStatusHold   = "Hold"
	JobStatusClosed = "Closed"
)

// Job represents an open position at a client company
type Job struct {
	Record
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Type        string   `json:"type,omitempty"`      // Full-time, Part-time, Contract
	WorkMode    string   `json:"work_mode,omitempty"` // Onsite, Remote, Hybrid
	Location    string   `json:"location,omitempty"`
	SalaryMin   *int     `json:"salary_min,omitempty"`
	SalaryMax   *int     `json:"salary_max,omitempty"`
	Openings    int      `json:"openings,omitempty"`
	Urgency     string   `json:"urgency,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Skills      []string `json:"skills,omitempty" gorm:"serializer:json"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
}

// Normalize trims identity fields and applies the default status
func (j *Job) Normalize() {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	if j.Status == "" {
		j.Status = JobSchema.DefaultStatus()
	}
}

// Validate checks required fields and status enum membership
func (j *Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return err
	}
	if !JobSchema.ValidStatus(j.Status) {
		return statusError("job", j.Status)
	}
	return nil
}

// ParseJob is the parse-and-validate boundary for raw job JSON
func ParseJob(data []byte) (*Job, error) {
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("malformed job payload: %w", err)
	}
	job.Normalize()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// JobSchema parameterizes the generic adapter/sync/API layers for jobs
var JobSchema = Schema[*Job]{
	Name: "jobs",
	New:  func() *Job { return &Job{} },
	SearchText: func(j *Job) string {
		return searchJoin(j.Title, j.Company, j.Location, strings.Join(j.Skills, " "))
	},
	Status:   func(j *Job) string { return j.Status },
	Statuses: []string{JobStatusAction, JobStatusHold, JobStatusClosed},
}
