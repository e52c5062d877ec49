package v1

import (
	"net/http"

	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.CreateCandidate)
		candidates.GET("", handler.ListCandidates)
		candidates.PATCH("/:id", handler.UpdateCandidateStatus)
		candidates.DELETE("/:id", handler.DeleteCandidate)
	}
}

// CreateCandidateRequest is the request payload for creating a candidate
type CreateCandidateRequest struct {
	Name     string                 `json:"name" binding:"required,not_blank"`
	Email    string                 `json:"email" binding:"required,email"`
	Position string                 `json:"position" binding:"required,not_blank"`
	Status   domain.CandidateStatus `json:"status" binding:"required,candidate_status" enums:"applied,interviewing,hired,rejected"`
}

// CreateCandidate godoc
// @Summary      Create candidate
// @Description  Create a candidate; the email must not belong to another candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCandidateRequest  true  "Candidate data"
// @Success      201   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req CreateCandidateRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c, &domain.Candidate{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Status:   req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created successfully", candidate)
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  List every candidate with interviews and their feedback
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CandidateWithInterviews}
// @Router       /candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved successfully", candidates)
}

// UpdateStatusRequest is the request payload for updating candidate status
type UpdateStatusRequest struct {
	Status domain.CandidateStatus `json:"status" binding:"required,candidate_status" enums:"applied,interviewing,hired,rejected"`
}

// UpdateCandidateStatus godoc
// @Summary      Update candidate status
// @Description  Set the hiring status; any status may follow any other
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Candidate ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response{data=domain.Candidate}
// @Failure      404   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) UpdateCandidateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.UpdateCandidateStatus(c, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate status updated successfully", candidate)
}

// DeleteCandidate godoc
// @Summary      Delete candidate
// @Description  Delete a candidate together with its interviews and feedback
// @Tags         candidates
// @Param        id   path  string  true  "Candidate ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
