package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitdesk/pkg/models"
)

func sampleJobs() []*models.Job {
	return []*models.Job{
		{Title: "Backend Engineer", Company: "Acme", Status: models.JobStatusAction},
		{Title: "QA Engineer", Company: "Globex", Status: models.JobStatusHold},
		{Title: "Designer", Company: "Acme", Status: models.JobStatusClosed},
	}
}

func TestApplyEmptyFilterReturnsAll(t *testing.T) {
	jobs := sampleJobs()
	assert.Len(t, Apply(models.JobSchema, jobs, Filter{}), 3)
	assert.Len(t, Apply(models.JobSchema, jobs, Filter{Status: models.StatusAll}), 3)
}

func TestApplyQueryIsCaseInsensitiveSubstring(t *testing.T) {
	jobs := sampleJobs()

	matched := Apply(models.JobSchema, jobs, Filter{Query: "engineer"})
	assert.Len(t, matched, 2)

	matched = Apply(models.JobSchema, jobs, Filter{Query: "ACME"})
	assert.Len(t, matched, 2)

	matched = Apply(models.JobSchema, jobs, Filter{Query: "  qa  "})
	assert.Len(t, matched, 1)
	assert.Equal(t, "QA Engineer", matched[0].Title)
}

func TestApplyStatusIsExactEquality(t *testing.T) {
	jobs := sampleJobs()

	matched := Apply(models.JobSchema, jobs, Filter{Status: models.JobStatusHold})
	assert.Len(t, matched, 1)
	assert.Equal(t, "QA Engineer", matched[0].Title)

	assert.Empty(t, Apply(models.JobSchema, jobs, Filter{Status: "hold"}))
}

func TestApplyCombinesQueryAndStatus(t *testing.T) {
	jobs := sampleJobs()

	matched := Apply(models.JobSchema, jobs, Filter{Query: "engineer", Status: models.JobStatusAction})
	assert.Len(t, matched, 1)
	assert.Equal(t, "Backend Engineer", matched[0].Title)

	assert.Empty(t, Apply(models.JobSchema, jobs, Filter{Query: "designer", Status: models.JobStatusAction}))
}
