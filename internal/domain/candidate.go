package domain

import (
	"context"
)

// CandidateStatus is the hiring stage of a candidate. Any status may be set
// from any other; applied → interviewing → hired/rejected is the usual path.
type CandidateStatus string

const (
	CandidateStatusApplied      CandidateStatus = "applied"
	CandidateStatusInterviewing CandidateStatus = "interviewing"
	CandidateStatusHired        CandidateStatus = "hired"
	CandidateStatusRejected     CandidateStatus = "rejected"
)

// CandidateStatuses lists every accepted status in display order.
var CandidateStatuses = []CandidateStatus{
	CandidateStatusApplied,
	CandidateStatusInterviewing,
	CandidateStatusHired,
	CandidateStatusRejected,
}

func (s CandidateStatus) Valid() bool {
	for _, status := range CandidateStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Candidate is a job applicant tracked through the pipeline.
type Candidate struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" validate:"required,not_blank"`
	Email    string          `json:"email" validate:"required,email"`
	Position string          `json:"position" validate:"required,not_blank"`
	Status   CandidateStatus `json:"status" validate:"required,candidate_status"`
}

// CandidateWithInterviews is a candidate with its interviews and their feedback.
type CandidateWithInterviews struct {
	Candidate
	Interviews []InterviewWithFeedback `json:"interviews"`
}

type CandidateRepository interface {
	// Create fails with ErrConflict when the email is taken.
	Create(ctx context.Context, candidate *Candidate) error
	// ListWithInterviews eager-loads interviews and feedback.
	ListWithInterviews(ctx context.Context) ([]CandidateWithInterviews, error)
	// UpdateStatus fails with ErrNotFound when id is unknown.
	UpdateStatus(ctx context.Context, id string, status CandidateStatus) (*Candidate, error)
	// Delete removes the candidate and, by cascade, its interviews and feedback.
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, candidate *Candidate) (*Candidate, error)
	ListCandidates(ctx context.Context) ([]CandidateWithInterviews, error)
	UpdateCandidateStatus(ctx context.Context, id string, status CandidateStatus) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
}
