package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobDefaultsStatus(t *testing.T) {
	job, err := ParseJob([]byte(`{"title":"Backend Engineer","company":"Acme"}`))
	require.NoError(t, err)
	assert.Equal(t, JobStatusAction, job.Status)
}

func TestParseJobMissingTitle(t *testing.T) {
	_, err := ParseJob([]byte(`{"company":"Acme"}`))
	assert.Error(t, err)
}

func TestParseJobRejectsUnknownStatus(t *testing.T) {
	_, err := ParseJob([]byte(`{"title":"Backend Engineer","company":"Acme","status":"Paused"}`))
	assert.Error(t, err)
}

func TestParseJobMalformedJSON(t *testing.T) {
	_, err := ParseJob([]byte(`{"title":`))
	assert.Error(t, err)
}

func TestParseCandidateTrimsAndDefaults(t *testing.T) {
	cand, err := ParseCandidate([]byte(`{"full_name":"  Asha Rao  ","email":"asha@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", cand.FullName)
	assert.Equal(t, CandidateStatusApplied, cand.Status)
}

func TestParseCandidateRejectsBadEmail(t *testing.T) {
	_, err := ParseCandidate([]byte(`{"full_name":"Asha Rao","email":"not-an-email"}`))
	assert.Error(t, err)
}

func TestParseApplicationRequiresCandidateReference(t *testing.T) {
	_, err := ParseApplication([]byte(`{"job_title":"QA Engineer"}`))
	assert.Error(t, err)

	app, err := ParseApplication([]byte(`{"candidate_name":"Asha Rao","job_title":"QA Engineer"}`))
	require.NoError(t, err)
	assert.Equal(t, ApplicationStatusApplied, app.Status)
}

func TestParseSelectedCandidateOfferLetterFlag(t *testing.T) {
	sel, err := ParseSelectedCandidate([]byte(`{"candidate_name":"Asha Rao"}`))
	require.NoError(t, err)
	assert.Equal(t, OfferLetterNo, sel.OfferLetter)

	_, err = ParseSelectedCandidate([]byte(`{"candidate_name":"Asha Rao","offer_letter":"Maybe"}`))
	assert.Error(t, err)
}

func TestParseJoinedCandidateRejectsNegativeTenure(t *testing.T) {
	_, err := ParseJoinedCandidate([]byte(`{"candidate_name":"Asha Rao","tenure_days":-1}`))
	assert.Error(t, err)
}

func TestRemainingTenure(t *testing.T) {
	joined := &JoinedCandidate{JoinedDate: "2024-01-01", TenureDays: 90}

	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 59, joined.RemainingTenure(now))

	// Day of joining counts as zero elapsed days
	now = time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 90, joined.RemainingTenure(now))

	// Past the tenure window the counter floors at zero
	now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, joined.RemainingTenure(now))
}

func TestRemainingTenureMalformedDate(t *testing.T) {
	joined := &JoinedCandidate{JoinedDate: "01/01/2024", TenureDays: 90}
	assert.Equal(t, 90, joined.RemainingTenure(time.Now()))
}

func TestSchemaStatusHelpers(t *testing.T) {
	assert.Equal(t, JobStatusAction, JobSchema.DefaultStatus())
	assert.True(t, JobSchema.ValidStatus(JobStatusHold))
	assert.False(t, JobSchema.ValidStatus("Paused"))

	assert.Equal(t, "status", JobSchema.StatusKey())
	assert.Equal(t, "offer_letter", SelectedCandidateSchema.StatusKey())

	assert.Equal(t, "", JoinedCandidateSchema.DefaultStatus())
}
