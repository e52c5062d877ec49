package postgres

import (
	"context"
	"fmt"

	"go-interview-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type feedbackRepo struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) domain.FeedbackRepository {
	return &feedbackRepo{db: db}
}

// Create inserts feedback for an interview that has none yet. The unique
// constraint on interview_id rejects a concurrent second submission.
func (r *feedbackRepo) Create(ctx context.Context, feedback *domain.Feedback) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var interviewID int64
	err = tx.QueryRow(ctx, `SELECT id FROM interviews WHERE id = $1 FOR SHARE`, feedback.InterviewID).Scan(&interviewID)
	if err != nil {
		return translateError(err)
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM feedbacks WHERE interview_id = $1)`, feedback.InterviewID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check feedback: %w", err)
	}
	if exists {
		return domain.ErrConflict
	}

	query := `
		INSERT INTO feedbacks (interview_id, rating, comment)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := tx.QueryRow(ctx, query, feedback.InterviewID, feedback.Rating, feedback.Comment).Scan(&feedback.ID); err != nil {
		return translateError(err)
	}

	return translateError(tx.Commit(ctx))
}

func (r *feedbackRepo) GetByInterviewID(ctx context.Context, interviewID int64) (*domain.Feedback, error) {
	query := `SELECT id, interview_id, rating, comment FROM feedbacks WHERE interview_id = $1`

	var f domain.Feedback
	err := r.db.QueryRow(ctx, query, interviewID).Scan(&f.ID, &f.InterviewID, &f.Rating, &f.Comment)
	if err != nil {
		return nil, translateError(err)
	}
	return &f, nil
}
