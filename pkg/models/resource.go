package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for all date-only fields (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// StatusAll is the sentinel that bypasses status filtering
const StatusAll = "All"

var validate = validator.New()

// Entity is implemented by every stored resource record
type Entity interface {
	GetID() string
	SetID(id string)
	MarkCreated(t time.Time)
	MarkUpdated(t time.Time)
}

// Record is the embedded identity shared by all resources. The ID is assigned
// exactly once by the persistence adapter and never mutated afterwards.
type Record struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// GetID returns the record's ID
func (r *Record) GetID() string { return r.ID }

// SetID sets the record's ID
func (r *Record) SetID(id string) { r.ID = id }

// MarkCreated stamps both timestamps at creation time
func (r *Record) MarkCreated(t time.Time) {
	r.CreatedAt = t
	r.UpdatedAt = t
}

// MarkUpdated stamps the update timestamp
func (r *Record) MarkUpdated(t time.Time) {
	r.UpdatedAt = t
}

// Schema describes one resource collection: how it is addressed, constructed,
// searched and status-filtered. The six instances across this package
// parameterize the generic adapter, sync and API layers instead of six
// hand-written per-page copies.
type Schema[R Entity] struct {
	// Name is the collection segment used in URLs and storage keys, e.g. "jobs"
	Name string

	// New constructs an empty record
	New func() R

	// SearchText returns the concatenation of searchable fields for the
	// free-text filter projection
	SearchText func(R) string

	// Status returns the record's workflow status
	Status func(R) string

	// Statuses is the closed enum of allowed status values; the first value
	// is the form-layer default
	Statuses []string

	// StatusField overrides the JSON field holding the status dimension when
	// it is not literally "status"
	StatusField string
}

// StatusKey returns the JSON field name carrying the status dimension
func (s Schema[R]) StatusKey() string {
	if s.StatusField != "" {
		return s.StatusField
	}
	return "status"
}

// DefaultStatus returns the first enum value, used when a record or form
// carries no status
func (s Schema[R]) DefaultStatus() string {
	if len(s.Statuses) == 0 {
		return ""
	}
	return s.Statuses[0]
}

// ValidStatus reports whether v is a member of the schema's status enum
func (s Schema[R]) ValidStatus(v string) bool {
	for _, allowed := range s.Statuses {
		if allowed == v {
			return true
		}
	}
	return false
}

// searchJoin concatenates searchable field values with single spaces,
// skipping empties
func searchJoin(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// statusError builds the uniform invalid-status message
func statusError(resource, status string) error {
	return &FieldError{Resource: resource, Field: "status", Detail: "invalid status '" + status + "'"}
}

// FieldError reports a single invalid or missing field discovered at the
// parse-and-validate boundary
type FieldError struct {
	Resource string
	Field    string
	Detail   string
}

func (e *FieldError) Error() string {
	return e.Resource + ": " + e.Field + ": " + e.Detail
}
