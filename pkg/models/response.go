package models

import "time"

// ListResponse is the envelope for collection reads. Clients must tolerate
// both this wrapper and a bare array; the adapter normalizes the two shapes.
type ListResponse[R Entity] struct {
	Items []R `json:"items"`
	Total int `json:"total"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionResponse is returned by a successful login
type SessionResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// JoinedCandidateView is a JoinedCandidate enriched with the computed
// remaining tenure; only the embedded record is ever persisted
type JoinedCandidateView struct {
	JoinedCandidate
	RemainingDays int `json:"remaining_days"`
}

// ReportSummary carries the per-resource status counts for the reports screen
type ReportSummary struct {
	Jobs         map[string]int `json:"jobs"`
	Candidates   map[string]int `json:"candidates"`
	Applications map[string]int `json:"applications"`
	Interviews   map[string]int `json:"interviews"`
	Selected     int            `json:"selected_candidates"`
	Joined       int            `json:"joined_candidates"`
	GeneratedAt  time.Time      `json:"generated_at"`
}
