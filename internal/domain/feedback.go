package domain

import "context"

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is the single evaluation attached to an interview.
type Feedback struct {
	ID          int64  `json:"id"`
	InterviewID int64  `json:"interview_id"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Comment     string `json:"comment" validate:"required,not_blank"`
}

type FeedbackRepository interface {
	// Create fails with ErrNotFound when the interview does not exist and
	// with ErrConflict when it already has feedback.
	Create(ctx context.Context, feedback *Feedback) error
	GetByInterviewID(ctx context.Context, interviewID int64) (*Feedback, error)
}

type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, feedback *Feedback) (*Feedback, error)
	ViewFeedback(ctx context.Context, interviewID int64) (*Feedback, error)
}
