package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/usecase"
	"go-interview-tracker/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) ListWithInterviews(ctx context.Context) ([]domain.CandidateWithInterviews, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWithInterviews), args.Error(1)
}

func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id string, status domain.CandidateStatus) (*domain.Candidate, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.InterviewWithFeedback, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewWithFeedback), args.Error(1)
}

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, feedback *domain.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *MockFeedbackRepo) GetByInterviewID(ctx context.Context, interviewID int64) (*domain.Feedback, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, domain.RegisterValidators(v))
	return v
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		Name:     "A",
		Email:    "a@x.com",
		Position: "Eng",
		Status:   domain.CandidateStatusApplied,
	}
}

func TestCreateCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign a UUID and persist", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Once()

		created, err := uc.CreateCandidate(ctx, validCandidate())
		require.NoError(t, err)
		_, parseErr := uuid.Parse(created.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "a@x.com", created.Email)
		assert.Equal(t, domain.CandidateStatusApplied, created.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Should report duplicate email as conflict", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(domain.ErrConflict).Once()

		_, err := uc.CreateCandidate(ctx, validCandidate())
		assertAppError(t, err, http.StatusBadRequest, "Email already exists")
	})

	t.Run("Should reject unknown status before persistence", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		c := validCandidate()
		c.Status = "ghosted"
		_, err := uc.CreateCandidate(ctx, c)
		assertAppError(t, err, http.StatusUnprocessableEntity, "Invalid candidate data")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject blank name", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		c := validCandidate()
		c.Name = "  "
		_, err := uc.CreateCandidate(ctx, c)
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details, "Name: must not be blank")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should hide storage failures", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused")).Once()

		_, err := uc.CreateCandidate(ctx, validCandidate())
		assertAppError(t, err, http.StatusInternalServerError, "Internal Server Error")
	})
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, newValidator(t))

	rating := domain.Feedback{ID: 1, InterviewID: 7, Rating: 5, Comment: "Great"}
	listed := []domain.CandidateWithInterviews{
		{
			Candidate: domain.Candidate{ID: "c1", Name: "A", Email: "a@x.com", Position: "Eng", Status: domain.CandidateStatusInterviewing},
			Interviews: []domain.InterviewWithFeedback{
				{Interview: domain.Interview{ID: 7, CandidateID: "c1", Interviewer: "B"}, Feedback: &rating},
			},
		},
	}
	repo.On("ListWithInterviews", ctx).Return(listed, nil).Once()

	got, err := uc.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Interviews, 1)
	assert.Equal(t, 5, got[0].Interviews[0].Feedback.Rating)
}

func TestUpdateCandidateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should allow any transition", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		updated := &domain.Candidate{ID: "c1", Status: domain.CandidateStatusApplied}
		repo.On("UpdateStatus", ctx, "c1", domain.CandidateStatusApplied).Return(updated, nil).Once()

		got, err := uc.UpdateCandidateStatus(ctx, "c1", domain.CandidateStatusApplied)
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateStatusApplied, got.Status)
	})

	t.Run("Should return not found for unknown id", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		repo.On("UpdateStatus", ctx, "missing", domain.CandidateStatusHired).Return(nil, domain.ErrNotFound).Once()

		_, err := uc.UpdateCandidateStatus(ctx, "missing", domain.CandidateStatusHired)
		assertAppError(t, err, http.StatusNotFound, "Candidate not found")
	})

	t.Run("Should reject invalid status without touching storage", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, newValidator(t))

		_, err := uc.UpdateCandidateStatus(ctx, "c1", "promoted")
		assertAppError(t, err, http.StatusUnprocessableEntity, "Invalid candidate status")
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteCandidate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, newValidator(t))

	repo.On("Delete", ctx, "c1").Return(nil).Once()
	repo.On("Delete", ctx, "missing").Return(domain.ErrNotFound).Once()

	assert.NoError(t, uc.DeleteCandidate(ctx, "c1"))
	assertAppError(t, uc.DeleteCandidate(ctx, "missing"), http.StatusNotFound, "Candidate not found")
	repo.AssertExpectations(t)
}

func TestScheduleInterview(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 7, 1, 22, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	t.Run("Should persist for existing candidate", func(t *testing.T) {
		repo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Interview")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Interview).ID = 99999
		}).Once()

		got, err := uc.ScheduleInterview(ctx, &domain.Interview{CandidateID: "c1", Interviewer: "B", ScheduledAt: at})
		require.NoError(t, err)
		assert.Equal(t, int64(99999), got.ID)
		assert.Nil(t, got.Result)
		assert.True(t, got.ScheduledAt.Equal(at))
		assert.Equal(t, time.UTC, got.ScheduledAt.Location())
	})

	t.Run("Should return not found for unknown candidate", func(t *testing.T) {
		repo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.Anything).Return(domain.ErrNotFound).Once()

		_, err := uc.ScheduleInterview(ctx, &domain.Interview{CandidateID: "nope", Interviewer: "B", ScheduledAt: at})
		assertAppError(t, err, http.StatusNotFound, "Candidate not found")
	})

	t.Run("Should require interviewer and time", func(t *testing.T) {
		repo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(repo, newValidator(t))

		_, err := uc.ScheduleInterview(ctx, &domain.Interview{CandidateID: "c1"})
		assertAppError(t, err, http.StatusUnprocessableEntity, "Invalid interview data")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListCandidateInterviews(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInterviewRepo)
	uc := usecase.NewInterviewUsecase(repo, newValidator(t))

	repo.On("ListByCandidate", ctx, "c1").Return([]domain.InterviewWithFeedback{{Interview: domain.Interview{ID: 1, CandidateID: "c1"}}}, nil).Once()
	repo.On("ListByCandidate", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	got, err := uc.ListCandidateInterviews(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Feedback)

	_, err = uc.ListCandidateInterviews(ctx, "missing")
	assertAppError(t, err, http.StatusNotFound, "Candidate not found")
}

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("Should accept first feedback and reject the second", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		uc := usecase.NewFeedbackUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Feedback")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Feedback).ID = 999
		}).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Feedback")).Return(domain.ErrConflict).Once()

		got, err := uc.SubmitFeedback(ctx, &domain.Feedback{InterviewID: 123, Rating: 5, Comment: "Excellent"})
		require.NoError(t, err)
		assert.Equal(t, int64(999), got.ID)
		assert.Equal(t, int64(123), got.InterviewID)

		_, err = uc.SubmitFeedback(ctx, &domain.Feedback{InterviewID: 123, Rating: 4, Comment: "Again"})
		assertAppError(t, err, http.StatusBadRequest, "Feedback already exists")
		repo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("Should return not found for unknown interview", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		uc := usecase.NewFeedbackUsecase(repo, newValidator(t))

		repo.On("Create", ctx, mock.Anything).Return(domain.ErrNotFound).Once()

		_, err := uc.SubmitFeedback(ctx, &domain.Feedback{InterviewID: 999, Rating: 4, Comment: "Good"})
		assertAppError(t, err, http.StatusNotFound, "Interview not found")
	})

	t.Run("Should reject rating outside 1..5 before persistence", func(t *testing.T) {
		repo := new(MockFeedbackRepo)
		uc := usecase.NewFeedbackUsecase(repo, newValidator(t))

		for _, rating := range []int{0, 6, -1} {
			_, err := uc.SubmitFeedback(ctx, &domain.Feedback{InterviewID: 1, Rating: rating, Comment: "x"})
			assertAppError(t, err, http.StatusUnprocessableEntity, "Invalid feedback data")
		}
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestViewFeedback(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFeedbackRepo)
	uc := usecase.NewFeedbackUsecase(repo, newValidator(t))

	repo.On("GetByInterviewID", ctx, int64(1)).Return(&domain.Feedback{ID: 3, InterviewID: 1, Rating: 4, Comment: "Solid"}, nil).Once()
	repo.On("GetByInterviewID", ctx, int64(2)).Return(nil, domain.ErrNotFound).Once()

	got, err := uc.ViewFeedback(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Solid", got.Comment)

	_, err = uc.ViewFeedback(ctx, 2)
	assertAppError(t, err, http.StatusNotFound, "Feedback not found")
}

func TestHealthCheck(t *testing.T) {
	got := usecase.NewHealthUsecase().Check(context.Background())
	assert.Equal(t, map[string]string{"status": "OK", "message": "Application is running"}, got)
}
