package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/pkg/models"
)

func TestNewSeedsDefaults(t *testing.T) {
	f := New(JobForm)

	assert.Equal(t, "Full-time", f.Value("type"))
	assert.Equal(t, "1", f.Value("openings"))
	assert.Equal(t, models.JobStatusAction, f.Value("status"))
	assert.Equal(t, "", f.Value("title"))
}

func TestNewSeedsTodayForDateFields(t *testing.T) {
	f := New(ApplicationForm)
	assert.Equal(t, time.Now().Format(models.DateLayout), f.Value("applied_on"))
}

func TestResetClearsPreviousSession(t *testing.T) {
	f := New(JobForm)
	f.Set("title", "Backend Engineer")
	f.Set("type", "Contract")

	f.Reset()

	assert.Equal(t, "", f.Value("title"))
	assert.Equal(t, "Full-time", f.Value("type"))
}

func TestLoadRecordJoinsLists(t *testing.T) {
	job := &models.Job{
		Title:   "Backend Engineer",
		Company: "Acme",
		Skills:  []string{"Go", "SQL", "Docker"},
		Status:  models.JobStatusHold,
	}

	f := New(JobForm)
	require.NoError(t, f.LoadRecord(job))

	assert.Equal(t, "Backend Engineer", f.Value("title"))
	assert.Equal(t, "Go, SQL, Docker", f.Value("skills"))
	assert.Equal(t, models.JobStatusHold, f.Value("status"))
	// Absent record fields fall back to defaults rather than carrying over
	assert.Equal(t, "Full-time", f.Value("type"))
}

func TestListRoundTripThroughForm(t *testing.T) {
	job := &models.Job{Title: "Backend Engineer", Company: "Acme", Skills: []string{"Go", "SQL"}}

	f := New(JobForm)
	require.NoError(t, f.LoadRecord(job))
	payload, err := f.Payload()
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "SQL"}, payload["skills"])
}

func TestFillIfEmptyNeverOverwrites(t *testing.T) {
	f := New(ApplicationForm)
	f.Set("candidate_name", "Asha Rao")
	f.Set("job_title", "QA Engineer")
	f.Set("company", "")

	f.FillIfEmpty(map[string]string{
		"job_title": "Senior QA Engineer",
		"company":   "Acme",
	})

	assert.Equal(t, "QA Engineer", f.Value("job_title"))
	assert.Equal(t, "Acme", f.Value("company"))
}

func TestValidateStopsAtFirstMissingRequired(t *testing.T) {
	f := New(CandidateForm)

	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Full name is required")

	f.Set("full_name", "Asha Rao")
	err = f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Father's name is required")
}

func TestPayloadConvertsIntFields(t *testing.T) {
	f := New(JobForm)
	f.Set("title", "Backend Engineer")
	f.Set("company", "Acme")
	f.Set("salary_min", "50000")
	f.Set("salary_max", "")

	payload, err := f.Payload()
	require.NoError(t, err)

	assert.Equal(t, 50000, payload["salary_min"])
	assert.Equal(t, 0, payload["salary_max"])
}

func TestPayloadRejectsNonNumericInt(t *testing.T) {
	f := New(JobForm)
	f.Set("title", "Backend Engineer")
	f.Set("company", "Acme")
	f.Set("openings", "many")

	_, err := f.Payload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Openings must be a number")
}
