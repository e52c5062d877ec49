package usecase

import (
	"context"
	"errors"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/pkg/apperror"
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

// CreateCandidate stores a new candidate under a freshly generated ID.
func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	if err := u.validate.Struct(candidate); err != nil {
		return nil, apperror.Validation("Invalid candidate data", validation.FormatValidationErrors(err))
	}

	candidate.ID = uuid.NewString()

	if err := u.repo.Create(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Email already exists")
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.CandidateWithInterviews, error) {
	candidates, err := u.repo.ListWithInterviews(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

// UpdateCandidateStatus sets any status regardless of the current one.
func (u *candidateUsecase) UpdateCandidateStatus(ctx context.Context, id string, status domain.CandidateStatus) (*domain.Candidate, error) {
	if !status.Valid() {
		return nil, apperror.Validation("Invalid candidate status", []string{
			"Status: must be one of: applied, interviewing, hired, rejected",
		})
	}

	candidate, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

// DeleteCandidate removes the candidate together with its interviews and feedback.
func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
