package postgres

import (
	"context"
	"fmt"

	"go-interview-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

// Create inserts an interview for an existing candidate. The candidate row is
// share-locked so it cannot be deleted before the insert commits.
func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockCandidate(ctx, tx, interview.CandidateID); err != nil {
		return err
	}

	query := `
		INSERT INTO interviews (candidate_id, interviewer, scheduled_at, result)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err = tx.QueryRow(ctx, query,
		interview.CandidateID,
		interview.Interviewer,
		interview.ScheduledAt,
		interview.Result,
	).Scan(&interview.ID)
	if err != nil {
		return translateError(err)
	}

	return translateError(tx.Commit(ctx))
}

// ListByCandidate returns the candidate's interviews with feedback joined in.
func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.InterviewWithFeedback, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`, candidateID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check candidate: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	rows, err := tx.Query(ctx, interviewWithFeedbackQuery+` WHERE i.candidate_id = $1`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interviews: %w", err)
	}
	interviews, err := scanInterviewsWithFeedback(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return interviews, nil
}

func lockCandidate(ctx context.Context, tx pgx.Tx, candidateID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT id FROM candidates WHERE id = $1 FOR SHARE`, candidateID).Scan(&id)
	return translateError(err)
}
