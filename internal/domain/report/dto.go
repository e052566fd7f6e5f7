package report

import "time"

type CreateReportDTO struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Category    Category `json:"issue_type" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required,latitude"`
	Longitude   *float64 `json:"longitude" binding:"required,longitude"`
	Address     *string  `json:"address,omitempty" binding:"omitempty,max=500"`
	ImageURL    *string  `json:"image_url,omitempty" binding:"omitempty,max=500"`
}

type UpdateStatusDTO struct {
	Status *Status `json:"status,omitempty"`
	Remark *string `json:"remark,omitempty"`
}

// ListQuery filters the public report listing.
type ListQuery struct {
	Category *Category `form:"issue_type"`
	Status   *Status   `form:"status"`
	Skip     int       `form:"skip" binding:"omitempty,min=0"`
	Limit    int       `form:"limit" binding:"omitempty,min=1,max=100"`
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Normalize fills defaults for paging.
func (q *ListQuery) Normalize() {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultListLimit
	}
	if q.Limit > MaxListLimit {
		q.Limit = MaxListLimit
	}
}

// AuditQuery filters the status history across reports.
type AuditQuery struct {
	ReportID  uint      `form:"report_id"`
	ChangedBy uint      `form:"changed_by"`
	Start     time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End       time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	Skip      int       `form:"skip" binding:"omitempty,min=0"`
	Limit     int       `form:"limit" binding:"omitempty,min=1,max=100"`
}
