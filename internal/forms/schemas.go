package forms

import "recruitdesk/pkg/models"

// JobForm binds the job dialog
var JobForm = Schema{
	Resource: "job",
	Fields: []Field{
		{Name: "title", Label: "Job title", Required: true},
		{Name: "company", Label: "Company", Required: true},
		{Name: "type", Label: "Job type", Default: "Full-time"},
		{Name: "work_mode", Label: "Work mode", Default: "Onsite"},
		{Name: "location", Label: "Location"},
		{Name: "salary_min", Label: "Minimum salary", Int: true},
		{Name: "salary_max", Label: "Maximum salary", Int: true},
		{Name: "openings", Label: "Openings", Int: true, Default: "1"},
		{Name: "urgency", Label: "Urgency"},
		{Name: "experience", Label: "Experience"},
		{Name: "skills", Label: "Skills", List: true},
		{Name: "description", Label: "Description"},
		{Name: "status", Label: "Status", Default: models.JobStatusAction},
	},
}

// CandidateForm binds the candidate dialog. The required list matches the
// candidate registration screen.
var CandidateForm = Schema{
	Resource: "candidate",
	Fields: []Field{
		{Name: "full_name", Label: "Full name", Required: true},
		{Name: "fathers_name", Label: "Father's name", Required: true},
		{Name: "email", Label: "Email", Required: true},
		{Name: "phone", Label: "Phone", Required: true},
		{Name: "date_of_birth", Label: "Date of birth", Required: true},
		{Name: "city", Label: "City", Required: true},
		{Name: "job_position", Label: "Job position"},
		{Name: "company", Label: "Company"},
		{Name: "languages", Label: "Languages", Required: true, List: true},
		{Name: "skills", Label: "Skills", List: true},
		{Name: "education", Label: "Education", Required: true},
		{Name: "preferred_categories", Label: "Preferred work categories", Required: true, List: true},
		{Name: "preferred_employment_types", Label: "Preferred employment types", Required: true, List: true},
		{Name: "expected_salary", Label: "Expected salary"},
		{Name: "status", Label: "Status", Default: models.CandidateStatusApplied},
	},
}

// ApplicationForm binds the application dialog
var ApplicationForm = Schema{
	Resource: "application",
	Fields: []Field{
		{Name: "candidate_id", Label: "Candidate"},
		{Name: "candidate_name", Label: "Candidate name", Required: true},
		{Name: "job_id", Label: "Job"},
		{Name: "job_title", Label: "Job title", Required: true},
		{Name: "company", Label: "Company"},
		{Name: "status", Label: "Status", Default: models.ApplicationStatusApplied},
		{Name: "sourced_by", Label: "Sourced by"},
		{Name: "sourced_from", Label: "Sourced from"},
		{Name: "assigned_to", Label: "Assigned to"},
		{Name: "applied_on", Label: "Applied on", DefaultToday: true},
		{Name: "comments", Label: "Comments"},
	},
}

// InterviewForm binds the interview dialog
var InterviewForm = Schema{
	Resource: "interview",
	Fields: []Field{
		{Name: "application_id", Label: "Application"},
		{Name: "candidate_name", Label: "Candidate name", Required: true},
		{Name: "job_title", Label: "Job title"},
		{Name: "round", Label: "Round", Int: true, Default: "1"},
		{Name: "date", Label: "Interview date", Required: true, DefaultToday: true},
		{Name: "time", Label: "Interview time", Required: true},
		{Name: "status", Label: "Status", Default: models.InterviewStatusScheduled},
		{Name: "feedback", Label: "Feedback"},
	},
}

// SelectedCandidateForm binds the selected-candidate dialog
var SelectedCandidateForm = Schema{
	Resource: "selected_candidate",
	Fields: []Field{
		{Name: "application_id", Label: "Application"},
		{Name: "candidate_name", Label: "Candidate name", Required: true},
		{Name: "job_title", Label: "Job title"},
		{Name: "company", Label: "Company"},
		{Name: "selected_date", Label: "Selected date", DefaultToday: true},
		{Name: "offer_letter", Label: "Offer letter", Default: models.OfferLetterNo},
		{Name: "joining_date", Label: "Joining date"},
	},
}

// JoinedCandidateForm binds the joined-candidate dialog
var JoinedCandidateForm = Schema{
	Resource: "joined_candidate",
	Fields: []Field{
		{Name: "application_id", Label: "Application"},
		{Name: "candidate_name", Label: "Candidate name", Required: true},
		{Name: "job_title", Label: "Job title"},
		{Name: "company", Label: "Company"},
		{Name: "joined_date", Label: "Joined date", Required: true, DefaultToday: true},
		{Name: "tenure_days", Label: "Tenure days", Int: true, Default: "90"},
		{Name: "invoice_no", Label: "Invoice number"},
		{Name: "invoice_date", Label: "Invoice date"},
	},
}
