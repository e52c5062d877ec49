package usecase

import (
	"context"
	"errors"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type feedbackUsecase struct {
	repo     domain.FeedbackRepository
	validate *validator.Validate
}

// NewFeedbackUsecase creates a new feedback usecase
func NewFeedbackUsecase(repo domain.FeedbackRepository, validate *validator.Validate) domain.FeedbackUsecase {
	return &feedbackUsecase{
		repo:     repo,
		validate: validate,
	}
}

// SubmitFeedback attaches the one allowed feedback to an interview.
func (uc *feedbackUsecase) SubmitFeedback(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	// Rating bounds are checked here as well as at binding so no caller can
	// reach storage with an out-of-range value.
	if err := uc.validate.Struct(feedback); err != nil {
		return nil, apperror.Validation("Invalid feedback data", validation.FormatValidationErrors(err))
	}

	if err := uc.repo.Create(ctx, feedback); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Interview not found")
		case errors.Is(err, domain.ErrConflict):
			return nil, apperror.Conflict("Feedback already exists")
		}
		return nil, apperror.Internal(err)
	}
	return feedback, nil
}

func (uc *feedbackUsecase) ViewFeedback(ctx context.Context, interviewID int64) (*domain.Feedback, error) {
	feedback, err := uc.repo.GetByInterviewID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Feedback not found")
		}
		return nil, apperror.Internal(err)
	}
	return feedback, nil
}
