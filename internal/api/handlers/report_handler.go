package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/utils"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// CreateReport godoc
// @Summary Submit a civic issue report
// @Tags reports
// @Accept json
// @Produce json
// @Param input body report.CreateReportDTO true "Report"
// @Success 201 {object} report.Report
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 429 {object} response.ErrorResponse "Too many reports"
// @Router /api/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input report.CreateReportDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	rep, err := h.svc.CreateReport(c.Request.Context(), input, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// ListReports godoc
// @Summary List reports
// @Tags reports
// @Produce json
// @Param issue_type query string false "Category filter"
// @Param status query string false "Status filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} report.Report
// @Router /api/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	var q report.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	reports, err := h.svc.ListReports(q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ListMyReports godoc
// @Summary Reports submitted by the caller
// @Tags reports
// @Produce json
// @Success 200 {array} report.Report
// @Router /api/reports/my [get]
func (h *ReportHandler) ListMyReports(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	reports, err := h.svc.ListMyReports(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport godoc
// @Summary Report detail with department and history
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} report.Report
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Router /api/reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid report id"})
		return
	}
	rep, err := h.svc.GetReport(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// History godoc
// @Summary Status history of a report, oldest first
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {array} report.StatusHistory
// @Router /api/reports/{id}/history [get]
func (h *ReportHandler) History(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid report id"})
		return
	}
	entries, err := h.svc.History(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateStatus godoc
// @Summary Change report status (department or admin)
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param input body report.UpdateStatusDTO true "New status and remark"
// @Success 200 {object} report.Report
// @Failure 403 {object} response.ErrorResponse "Not authorized"
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Router /api/reports/{id}/status [patch]
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid report id"})
		return
	}

	var input report.UpdateStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	rep, err := h.svc.UpdateStatus(c.Request.Context(), id, input, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// ListOverdue godoc
// @Summary Open reports past their SLA deadline
// @Tags reports
// @Produce json
// @Success 200 {array} report.Report
// @Router /api/reports/overdue [get]
func (h *ReportHandler) ListOverdue(c *gin.Context) {
	reports, err := h.svc.ListOverdue()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// AuditLog godoc
// @Summary Search status history across reports (department or admin)
// @Tags reports
// @Produce json
// @Param report_id query int false "Report filter"
// @Param changed_by query int false "Actor filter"
// @Param start query string false "RFC3339 lower bound"
// @Param end query string false "RFC3339 upper bound"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} report.StatusHistory
// @Router /api/history [get]
func (h *ReportHandler) AuditLog(c *gin.Context) {
	var q report.AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	entries, err := h.svc.AuditLog(q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
