package v1

import (
	"net/http"
	"time"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview routes under a candidate.
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/candidates/:candidate_id/interviews")
	{
		interviews.POST("", handler.ScheduleInterview)
		interviews.GET("", handler.ListCandidateInterviews)
	}
}

// ScheduleInterviewRequest is the request payload for scheduling an interview
type ScheduleInterviewRequest struct {
	Interviewer string    `json:"interviewer" binding:"required,not_blank"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required" example:"2025-07-01T15:00:00Z"`
	Result      *string   `json:"result"`
}

// ScheduleInterview godoc
// @Summary      Schedule interview
// @Description  Schedule an interview for an existing candidate
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        candidate_id  path  string                    true  "Candidate ID"
// @Param        body  body      ScheduleInterviewRequest  true  "Interview data"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      404   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /candidates/{candidate_id}/interviews [post]
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req ScheduleInterviewRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	interview, err := h.interviewUC.ScheduleInterview(c, &domain.Interview{
		CandidateID: c.Param("candidate_id"),
		Interviewer: req.Interviewer,
		ScheduledAt: req.ScheduledAt,
		Result:      req.Result,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled successfully", interview)
}

// ListCandidateInterviews godoc
// @Summary      List candidate interviews
// @Description  List a candidate's interviews, each with its feedback
// @Tags         interviews
// @Produce      json
// @Param        candidate_id  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=[]domain.InterviewWithFeedback}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{candidate_id}/interviews [get]
func (h *InterviewHandler) ListCandidateInterviews(c *gin.Context) {
	interviews, err := h.interviewUC.ListCandidateInterviews(c, c.Param("candidate_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved successfully", interviews)
}
