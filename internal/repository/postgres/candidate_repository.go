package postgres

import (
	"context"
	"fmt"

	"go-interview-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// Create inserts the candidate after checking the email inside the same
// transaction. The unique constraint on email catches concurrent inserts.
func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`, candidate.Email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check candidate email: %w", err)
	}
	if exists {
		return domain.ErrConflict
	}

	query := `
		INSERT INTO candidates (id, name, email, position, status)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, query,
		candidate.ID,
		candidate.Name,
		candidate.Email,
		candidate.Position,
		candidate.Status,
	); err != nil {
		return translateError(err)
	}

	return translateError(tx.Commit(ctx))
}

// ListWithInterviews loads every candidate, then all of their interviews and
// feedback in one batched query, from a single snapshot.
func (r *candidateRepository) ListWithInterviews(ctx context.Context) ([]domain.CandidateWithInterviews, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT id, name, email, position, status FROM candidates`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	candidates := make([]domain.CandidateWithInterviews, 0)
	index := make(map[string]int)
	var ids []string
	for rows.Next() {
		c := domain.CandidateWithInterviews{Interviews: []domain.InterviewWithFeedback{}}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Position, &c.Status); err != nil {
			rows.Close()
			return nil, err
		}
		index[c.ID] = len(candidates)
		ids = append(ids, c.ID)
		candidates = append(candidates, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		rows, err = tx.Query(ctx, interviewWithFeedbackQuery+` WHERE i.candidate_id = ANY($1)`, pq.Array(ids))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch interviews: %w", err)
		}
		interviews, err := scanInterviewsWithFeedback(rows)
		if err != nil {
			return nil, err
		}
		for _, iv := range interviews {
			pos := index[iv.CandidateID]
			candidates[pos].Interviews = append(candidates[pos].Interviews, iv)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id string, status domain.CandidateStatus) (*domain.Candidate, error) {
	query := `
		UPDATE candidates SET status = $2
		WHERE id = $1
		RETURNING id, name, email, position, status`

	var c domain.Candidate
	err := r.db.QueryRow(ctx, query, id, status).Scan(&c.ID, &c.Name, &c.Email, &c.Position, &c.Status)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// Delete removes the candidate. Interviews and feedback go with it through
// ON DELETE CASCADE.
func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
