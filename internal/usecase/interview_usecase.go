package usecase

import (
	"context"
	"errors"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type interviewUsecase struct {
	repo     domain.InterviewRepository
	validate *validator.Validate
}

// NewInterviewUsecase creates a new interview usecase
func NewInterviewUsecase(repo domain.InterviewRepository, validate *validator.Validate) domain.InterviewUsecase {
	return &interviewUsecase{
		repo:     repo,
		validate: validate,
	}
}

// ScheduleInterview books an interview for an existing candidate.
func (uc *interviewUsecase) ScheduleInterview(ctx context.Context, interview *domain.Interview) (*domain.Interview, error) {
	if err := uc.validate.Struct(interview); err != nil {
		return nil, apperror.Validation("Invalid interview data", validation.FormatValidationErrors(err))
	}
	interview.ScheduledAt = interview.ScheduledAt.UTC()

	if err := uc.repo.Create(ctx, interview); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return interview, nil
}

// ListCandidateInterviews returns the candidate's interviews with their feedback.
func (uc *interviewUsecase) ListCandidateInterviews(ctx context.Context, candidateID string) ([]domain.InterviewWithFeedback, error) {
	interviews, err := uc.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}
