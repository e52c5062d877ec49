package domain

import (
	"context"
	"time"
)

// Interview is a scheduled meeting between a candidate and an interviewer.
type Interview struct {
	ID          int64     `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Interviewer string    `json:"interviewer" validate:"required,not_blank"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Result      *string   `json:"result"`
}

// InterviewWithFeedback carries the interview's feedback, nil when none was submitted.
type InterviewWithFeedback struct {
	Interview
	Feedback *Feedback `json:"feedback"`
}

type InterviewRepository interface {
	// Create fails with ErrNotFound when the candidate does not exist.
	Create(ctx context.Context, interview *Interview) error
	// ListByCandidate fails with ErrNotFound when the candidate does not exist.
	ListByCandidate(ctx context.Context, candidateID string) ([]InterviewWithFeedback, error)
}

type InterviewUsecase interface {
	ScheduleInterview(ctx context.Context, interview *Interview) (*Interview, error)
	ListCandidateInterviews(ctx context.Context, candidateID string) ([]InterviewWithFeedback, error)
}
