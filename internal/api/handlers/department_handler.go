package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/utils"
)

type DepartmentHandler struct {
	departments *application.DepartmentService
	reports     *application.ReportService
}

func NewDepartmentHandler(departments *application.DepartmentService, reports *application.ReportService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments, reports: reports}
}

// ListDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} department.Department
// @Router /api/departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.departments.ListDepartments()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

// ListReports godoc
// @Summary Reports routed to a department, highest priority first
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {array} report.Report
// @Failure 404 {object} response.ErrorResponse "Department not found"
// @Router /api/departments/{id}/reports [get]
func (h *DepartmentHandler) ListReports(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid department id"})
		return
	}
	reports, err := h.reports.ListByDepartment(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
