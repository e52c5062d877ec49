package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/repository/postgres"
	"go-interview-tracker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPool connects to TEST_DATABASE_URL and empties the tables. Tests
// are skipped when the variable is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, dsn, database.PoolOptions{MaxConns: 10, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE candidates, interviews, feedbacks RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func seedCandidate(t *testing.T, repo domain.CandidateRepository, email string) *domain.Candidate {
	t.Helper()
	c := &domain.Candidate{
		ID:       uuid.NewString(),
		Name:     "A",
		Email:    email,
		Position: "Eng",
		Status:   domain.CandidateStatusApplied,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCandidateRepository(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := postgres.NewCandidateRepository(pool)

	t.Run("duplicate email is a conflict and nothing is stored", func(t *testing.T) {
		seedCandidate(t, repo, "dup@x.com")

		err := repo.Create(ctx, &domain.Candidate{
			ID: uuid.NewString(), Name: "B", Email: "dup@x.com", Position: "Ops", Status: domain.CandidateStatusApplied,
		})
		assert.ErrorIs(t, err, domain.ErrConflict)

		var count int
		require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM candidates WHERE email = 'dup@x.com'`).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("update and delete of unknown id are not found", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "nonexistent-id", domain.CandidateStatusHired)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "nonexistent-id"), domain.ErrNotFound)
	})

	t.Run("status may move backwards", func(t *testing.T) {
		c := seedCandidate(t, repo, "status@x.com")

		updated, err := repo.UpdateStatus(ctx, c.ID, domain.CandidateStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusRejected, updated.Status)

		updated, err = repo.UpdateStatus(ctx, c.ID, domain.CandidateStatusApplied)
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusApplied, updated.Status)
	})
}

func TestInterviewAndFeedbackRepositories(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	candidates := postgres.NewCandidateRepository(pool)
	interviews := postgres.NewInterviewRepository(pool)
	feedbacks := postgres.NewFeedbackRepository(pool)

	c := seedCandidate(t, candidates, "flow@x.com")
	at := time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC)

	iv := &domain.Interview{CandidateID: c.ID, Interviewer: "B", ScheduledAt: at}
	require.NoError(t, interviews.Create(ctx, iv))
	assert.NotZero(t, iv.ID)

	t.Run("interview for unknown candidate is not found", func(t *testing.T) {
		err := interviews.Create(ctx, &domain.Interview{CandidateID: "nope", Interviewer: "B", ScheduledAt: at})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = interviews.ListByCandidate(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("only one feedback per interview", func(t *testing.T) {
		first := &domain.Feedback{InterviewID: iv.ID, Rating: 5, Comment: "Excellent"}
		require.NoError(t, feedbacks.Create(ctx, first))

		err := feedbacks.Create(ctx, &domain.Feedback{InterviewID: iv.ID, Rating: 3, Comment: "Again"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		got, err := feedbacks.GetByInterviewID(ctx, iv.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, 5, got.Rating)
	})

	t.Run("feedback for unknown interview is not found", func(t *testing.T) {
		err := feedbacks.Create(ctx, &domain.Feedback{InterviewID: 987654, Rating: 4, Comment: "Good"})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = feedbacks.GetByInterviewID(ctx, 987654)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list eager-loads interviews and feedback", func(t *testing.T) {
		seedCandidate(t, candidates, "empty@x.com")

		listed, err := candidates.ListWithInterviews(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 2)

		byEmail := map[string]domain.CandidateWithInterviews{}
		for _, l := range listed {
			byEmail[l.Email] = l
		}
		assert.NotNil(t, byEmail["empty@x.com"].Interviews)
		assert.Empty(t, byEmail["empty@x.com"].Interviews)

		withInterviews := byEmail["flow@x.com"].Interviews
		require.Len(t, withInterviews, 1)
		assert.True(t, withInterviews[0].ScheduledAt.Equal(at))
		assert.Nil(t, withInterviews[0].Result)
		require.NotNil(t, withInterviews[0].Feedback)
		assert.Equal(t, "Excellent", withInterviews[0].Feedback.Comment)
	})

	t.Run("delete cascades to interviews and feedback", func(t *testing.T) {
		require.NoError(t, candidates.Delete(ctx, c.ID))

		var count int
		require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM interviews WHERE candidate_id = $1`, c.ID).Scan(&count))
		assert.Zero(t, count)
		require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM feedbacks WHERE interview_id = $1`, iv.ID).Scan(&count))
		assert.Zero(t, count)
	})
}

func TestConcurrentFeedbackSubmission(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	candidates := postgres.NewCandidateRepository(pool)
	interviews := postgres.NewInterviewRepository(pool)
	feedbacks := postgres.NewFeedbackRepository(pool)

	c := seedCandidate(t, candidates, "race@x.com")
	iv := &domain.Interview{CandidateID: c.ID, Interviewer: "B", ScheduledAt: time.Now().UTC()}
	require.NoError(t, interviews.Create(ctx, iv))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := feedbacks.Create(ctx, &domain.Feedback{InterviewID: iv.ID, Rating: 4, Comment: "Good"})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrConflict)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM feedbacks WHERE interview_id = $1`, iv.ID).Scan(&count))
	assert.Equal(t, 1, count)
}
