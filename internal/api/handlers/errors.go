package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/pkg/response"
)

// statusFor maps a service error kind onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.JSON(status, response.ErrorResponse{Error: msg})
}

var fieldLabels = map[string]string{
	"Title":       "title",
	"Description": "description",
	"Category":    "issue_type",
	"Latitude":    "latitude",
	"Longitude":   "longitude",
	"Address":     "address",
	"ImageURL":    "image_url",
	"Status":      "status",
	"Remark":      "remark",
	"Name":        "name",
	"Email":       "email",
	"Password":    "password",
	"Ward":        "ward",
	"Role":        "role",
	"ReportID":    "report_id",
	"ChangedBy":   "changed_by",
	"Skip":        "skip",
	"Limit":       "limit",
}

// bindError writes a 400 with friendly validation messages.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "latitude", "longitude":
			msg = fmt.Sprintf("%s is out of range", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
}
