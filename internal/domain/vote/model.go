package vote

import "time"

// Vote is one user's endorsement of a report. The composite unique index
// allows at most one vote per (user, report).
type Vote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_user_report"`
	ReportID  uint      `json:"report_id" gorm:"not null;uniqueIndex:idx_votes_user_report;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (Vote) TableName() string {
	return "votes"
}
