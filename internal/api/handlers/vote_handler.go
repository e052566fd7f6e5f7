package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/utils"
)

type VoteHandler struct {
	svc *application.VoteService
}

func NewVoteHandler(svc *application.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

func voteTarget(c *gin.Context) (uint, bool) {
	id, err := utils.ParseIDParam(c, "report_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid report id"})
		return 0, false
	}
	return id, true
}

// CastVote godoc
// @Summary Upvote a report
// @Tags votes
// @Produce json
// @Param report_id path int true "Report ID"
// @Success 201 {object} report.Report
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Failure 409 {object} response.ErrorResponse "Already voted"
// @Router /api/votes/{report_id} [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := voteTarget(c)
	if !ok {
		return
	}

	rep, err := h.svc.CastVote(c.Request.Context(), id, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// RemoveVote godoc
// @Summary Withdraw an upvote
// @Tags votes
// @Param report_id path int true "Report ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Vote not found"
// @Router /api/votes/{report_id} [delete]
func (h *VoteHandler) RemoveVote(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := voteTarget(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveVote(c.Request.Context(), id, actor); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
