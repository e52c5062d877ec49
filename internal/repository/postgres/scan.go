package postgres

import (
	"go-interview-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

// interviewWithFeedbackQuery selects interviews joined to their optional
// feedback. Callers append the WHERE clause.
const interviewWithFeedbackQuery = `
	SELECT
		i.id, i.candidate_id, i.interviewer, i.scheduled_at, i.result,
		f.id, f.rating, f.comment
	FROM interviews i
	LEFT JOIN feedbacks f ON f.interview_id = i.id`

func scanInterviewsWithFeedback(rows pgx.Rows) ([]domain.InterviewWithFeedback, error) {
	defer rows.Close()

	interviews := make([]domain.InterviewWithFeedback, 0)
	for rows.Next() {
		var (
			iv         domain.InterviewWithFeedback
			feedbackID *int64
			rating     *int
			comment    *string
		)
		if err := rows.Scan(
			&iv.ID, &iv.CandidateID, &iv.Interviewer, &iv.ScheduledAt, &iv.Result,
			&feedbackID, &rating, &comment,
		); err != nil {
			return nil, err
		}
		if feedbackID != nil {
			iv.Feedback = &domain.Feedback{
				ID:          *feedbackID,
				InterviewID: iv.ID,
				Rating:      *rating,
				Comment:     *comment,
			}
		}
		interviews = append(interviews, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interviews, nil
}
