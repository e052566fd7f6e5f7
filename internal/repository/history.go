package repository

import (
	"time"

	"github.com/linskybing/civictrack/internal/domain/report"
	"gorm.io/gorm"
)

type HistoryQueryParams struct {
	ReportID  *uint
	ChangedBy *uint
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Offset    int
}

// HistoryRepo is append-only: entries are never updated or deleted.
type HistoryRepo interface {
	CreateHistory(h *report.StatusHistory) error
	ListHistory(reportID uint) ([]report.StatusHistory, error)
	GetHistory(params HistoryQueryParams) ([]report.StatusHistory, error)
	WithTx(tx *gorm.DB) HistoryRepo
}

type DBHistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *DBHistoryRepo {
	return &DBHistoryRepo{
		db: db,
	}
}

func (r *DBHistoryRepo) CreateHistory(h *report.StatusHistory) error {
	return r.db.Create(h).Error
}

func (r *DBHistoryRepo) ListHistory(reportID uint) ([]report.StatusHistory, error) {
	var entries []report.StatusHistory
	err := historyAscending(r.db.Where("report_id = ?", reportID)).Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) GetHistory(params HistoryQueryParams) ([]report.StatusHistory, error) {
	var entries []report.StatusHistory
	query := r.db.Model(&report.StatusHistory{})

	if params.ReportID != nil {
		query = query.Where("report_id = ?", *params.ReportID)
	}
	if params.ChangedBy != nil {
		query = query.Where("changed_by = ?", *params.ChangedBy)
	}
	if params.StartTime != nil {
		query = query.Where("timestamp >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("timestamp <= ?", *params.EndTime)
	}

	query = query.Order("timestamp DESC").Order("id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) WithTx(tx *gorm.DB) HistoryRepo {
	if tx == nil {
		return r
	}
	return &DBHistoryRepo{
		db: tx,
	}
}
