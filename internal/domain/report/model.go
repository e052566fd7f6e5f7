package report

import (
	"time"

	"github.com/linskybing/civictrack/internal/domain/department"
)

// Category is the kind of civic issue a report describes.
type Category string

const (
	CategoryPothole     Category = "pothole"
	CategoryGarbage     Category = "garbage"
	CategoryStreetlight Category = "streetlight"
	CategoryDrainage    Category = "drainage"
	CategoryOther       Category = "other"
)

// Categories lists every recognised category in display order.
var Categories = []Category{
	CategoryPothole,
	CategoryGarbage,
	CategoryStreetlight,
	CategoryDrainage,
	CategoryOther,
}

// Valid reports whether c is one of the recognised categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPothole, CategoryGarbage, CategoryStreetlight, CategoryDrainage, CategoryOther:
		return true
	}
	return false
}

type Status string

const (
	StatusSubmitted    Status = "submitted"
	StatusAssigned     Status = "assigned"
	StatusAcknowledged Status = "acknowledged"
	StatusInProgress   Status = "in_progress"
	StatusResolved     Status = "resolved"
	StatusRejected     Status = "rejected"
	StatusDelayed      Status = "delayed"
)

var Statuses = []Status{
	StatusSubmitted,
	StatusAssigned,
	StatusAcknowledged,
	StatusInProgress,
	StatusResolved,
	StatusRejected,
	StatusDelayed,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Closed reports whether no further work is expected on a report in this status.
func (s Status) Closed() bool {
	return s == StatusResolved || s == StatusRejected
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Report is a civic issue submitted by a citizen.
type Report struct {
	ID            uint                   `json:"id" gorm:"primaryKey"`
	Title         string                 `json:"title" gorm:"size:200;not null"`
	Description   string                 `json:"description" gorm:"type:text;not null"`
	ImageURL      *string                `json:"image_url" gorm:"size:500"`
	Category      Category               `json:"issue_type" gorm:"column:issue_type;size:20;not null;index"`
	Latitude      float64                `json:"latitude" gorm:"not null"`
	Longitude     float64                `json:"longitude" gorm:"not null"`
	Address       *string                `json:"address" gorm:"size:500"`
	Status        Status                 `json:"status" gorm:"size:20;not null;default:'submitted';index"`
	Priority      Priority               `json:"priority" gorm:"size:10;not null;default:'low'"`
	PriorityScore float64                `json:"priority_score" gorm:"not null;default:0;index"`
	UpvoteCount   int                    `json:"upvote_count" gorm:"not null;default:0"`
	IsDuplicate   bool                   `json:"is_duplicate" gorm:"not null;default:false"`
	IsHotspot     bool                   `json:"is_hotspot" gorm:"not null;default:false"`
	SLADeadline   time.Time              `json:"sla_deadline" gorm:"column:sla_deadline;not null;index"`
	SLABreached   bool                   `json:"sla_breached" gorm:"-"`
	CreatedAt     time.Time              `json:"created_at" gorm:"not null;index"`
	UpdatedAt     time.Time              `json:"updated_at"`
	UserID        uint                   `json:"user_id" gorm:"not null;index"`
	DepartmentID  *uint                  `json:"department_id" gorm:"index"`
	Department    *department.Department `json:"department" gorm:"foreignKey:DepartmentID"`
	StatusHistory []StatusHistory        `json:"status_history" gorm:"foreignKey:ReportID"`
}

func (Report) TableName() string {
	return "reports"
}

// RefreshPriority recomputes the score and label from the current upvote
// count and age.
func (r *Report) RefreshPriority(now time.Time) {
	r.PriorityScore = ComputePriorityScore(r.UpvoteCount, r.CreatedAt, now)
	r.Priority = ScoreToLabel(r.PriorityScore)
}

// MarkSLA sets the read-time SLABreached flag.
func (r *Report) MarkSLA(now time.Time) {
	r.SLABreached = !r.Status.Closed() && now.After(r.SLADeadline)
}

// StatusHistory is one append-only audit entry for a status-affecting write.
type StatusHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReportID  uint      `json:"report_id" gorm:"not null;index"`
	OldStatus *Status   `json:"old_status" gorm:"size:20"`
	NewStatus Status    `json:"new_status" gorm:"size:20;not null"`
	Remark    *string   `json:"remark" gorm:"type:text"`
	ChangedBy *uint     `json:"changed_by"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
}

func (StatusHistory) TableName() string {
	return "status_history"
}
