package v1

import (
	"net/http"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUC domain.FeedbackUsecase
}

// NewFeedbackHandler registers feedback routes
func NewFeedbackHandler(r *gin.RouterGroup, feedbackUC domain.FeedbackUsecase) {
	handler := &FeedbackHandler{feedbackUC: feedbackUC}

	feedback := r.Group("/interviews/:interview_id/feedback")
	{
		feedback.POST("", handler.SubmitFeedback)
		feedback.GET("", handler.ViewFeedback)
	}
}

// SubmitFeedbackRequest is the request payload for submitting feedback
type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"gte=1,lte=5" minimum:"1" maximum:"5"`
	Comment string `json:"comment" binding:"required,not_blank"`
}

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Submit the single feedback allowed for an interview
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        interview_id  path      int                    true  "Interview ID"
// @Param        body          body      SubmitFeedbackRequest  true  "Feedback data"
// @Success      201           {object}  response.Response{data=domain.Feedback}
// @Failure      400           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      422           {object}  response.Response
// @Router       /interviews/{interview_id}/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	interviewID, err := int64Param(c, "interview_id", "Interview ID")
	if err != nil {
		c.Error(err)
		return
	}

	var req SubmitFeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	feedback, err := h.feedbackUC.SubmitFeedback(c, &domain.Feedback{
		InterviewID: interviewID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Feedback submitted successfully", feedback)
}

// ViewFeedback godoc
// @Summary      View feedback
// @Description  Get the feedback submitted for an interview
// @Tags         feedback
// @Produce      json
// @Param        interview_id  path      int  true  "Interview ID"
// @Success      200           {object}  response.Response{data=domain.Feedback}
// @Failure      404           {object}  response.Response
// @Router       /interviews/{interview_id}/feedback [get]
func (h *FeedbackHandler) ViewFeedback(c *gin.Context) {
	interviewID, err := int64Param(c, "interview_id", "Interview ID")
	if err != nil {
		c.Error(err)
		return
	}

	feedback, err := h.feedbackUC.ViewFeedback(c, interviewID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feedback retrieved successfully", feedback)
}
