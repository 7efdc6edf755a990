package adapter

import (
	"fmt"

	"recruitdesk/internal/config"
	"recruitdesk/pkg/models"
)

// Store groups one adapter per resource collection, all bound to the single
// backend driver configured for this deployment
type Store struct {
	Jobs         Adapter[*models.Job]
	Candidates   Adapter[*models.Candidate]
	Applications Adapter[*models.Application]
	Interviews   Adapter[*models.Interview]
	Selected     Adapter[*models.SelectedCandidate]
	Joined       Adapter[*models.JoinedCandidate]
}

// NewStore builds the adapter set for the configured storage driver. Driver
// selection happens here, once per deployment; nothing downstream knows
// which backend it is talking to.
func NewStore(cfg *config.Config) (*Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := ConnectPostgres(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return &Store{
			Jobs:         NewGormAdapter(db, models.JobSchema),
			Candidates:   NewGormAdapter(db, models.CandidateSchema),
			Applications: NewGormAdapter(db, models.ApplicationSchema),
			Interviews:   NewGormAdapter(db, models.InterviewSchema),
			Selected:     NewGormAdapter(db, models.SelectedCandidateSchema),
			Joined:       NewGormAdapter(db, models.JoinedCandidateSchema),
		}, nil

	case "redis":
		client := NewRedisClient(cfg)
		prefix := cfg.Storage.Redis.KeyPrefix
		return &Store{
			Jobs:         NewRedisAdapter(client, prefix, models.JobSchema),
			Candidates:   NewRedisAdapter(client, prefix, models.CandidateSchema),
			Applications: NewRedisAdapter(client, prefix, models.ApplicationSchema),
			Interviews:   NewRedisAdapter(client, prefix, models.InterviewSchema),
			Selected:     NewRedisAdapter(client, prefix, models.SelectedCandidateSchema),
			Joined:       NewRedisAdapter(client, prefix, models.JoinedCandidateSchema),
		}, nil

	case "rest":
		client := NewClient(cfg)
		return &Store{
			Jobs:         NewRESTAdapter(client, models.JobSchema),
			Candidates:   NewRESTAdapter(client, models.CandidateSchema),
			Applications: NewRESTAdapter(client, models.ApplicationSchema),
			Interviews:   NewRESTAdapter(client, models.InterviewSchema),
			Selected:     NewRESTAdapter(client, models.SelectedCandidateSchema),
			Joined:       NewRESTAdapter(client, models.JoinedCandidateSchema),
		}, nil

	case "memory":
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// NewMemoryStore builds a fully in-memory adapter set, used by the memory
// driver and by tests
func NewMemoryStore() *Store {
	return &Store{
		Jobs:         NewMemoryAdapter(models.JobSchema),
		Candidates:   NewMemoryAdapter(models.CandidateSchema),
		Applications: NewMemoryAdapter(models.ApplicationSchema),
		Interviews:   NewMemoryAdapter(models.InterviewSchema),
		Selected:     NewMemoryAdapter(models.SelectedCandidateSchema),
		Joined:       NewMemoryAdapter(models.JoinedCandidateSchema),
	}
}
