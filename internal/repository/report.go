package repository

import (
	"time"

	"github.com/linskybing/civictrack/internal/domain/report"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepo interface {
	GetReportByID(id uint) (report.Report, error)
	GetReportForUpdate(id uint) (report.Report, error)
	GetReportDetail(id uint) (report.Report, error)
	CreateReport(r *report.Report) error
	UpdateStatusAndPriority(id uint, status report.Status, score float64, priority report.Priority) error
	UpdatePriority(id uint, score float64, priority report.Priority) error
	IncrementUpvotes(id uint) error
	DecrementUpvotes(id uint) (bool, error)
	ListReports(q report.ListQuery) ([]report.Report, error)
	ListReportsByUser(userID uint) ([]report.Report, error)
	ListReportsByDepartment(deptID uint) ([]report.Report, error)
	ListOverdueReports(now time.Time) ([]report.Report, error)
	WithTx(tx *gorm.DB) ReportRepo
}

type DBReportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *DBReportRepo {
	return &DBReportRepo{
		db: db,
	}
}

func historyAscending(db *gorm.DB) *gorm.DB {
	return db.Order("timestamp ASC, id ASC")
}

func (r *DBReportRepo) withDetail() *gorm.DB {
	return r.db.Preload("Department").Preload("StatusHistory", historyAscending)
}

func (r *DBReportRepo) GetReportByID(id uint) (report.Report, error) {
	var rep report.Report
	err := r.db.First(&rep, id).Error
	return rep, err
}

// GetReportForUpdate reads the row with SELECT ... FOR UPDATE, holding the
// lock until the surrounding transaction ends. Only meaningful inside ExecTx.
func (r *DBReportRepo) GetReportForUpdate(id uint) (report.Report, error) {
	var rep report.Report
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rep, id).Error
	return rep, err
}

func (r *DBReportRepo) GetReportDetail(id uint) (report.Report, error) {
	var rep report.Report
	err := r.withDetail().First(&rep, id).Error
	return rep, err
}

func (r *DBReportRepo) CreateReport(rep *report.Report) error {
	return r.db.Omit("Department", "StatusHistory").Create(rep).Error
}

func (r *DBReportRepo) UpdateStatusAndPriority(id uint, status report.Status, score float64, priority report.Priority) error {
	return r.db.Model(&report.Report{}).Where("id = ?", id).Updates(map[string]any{
		"status":         status,
		"priority_score": score,
		"priority":       priority,
	}).Error
}

func (r *DBReportRepo) UpdatePriority(id uint, score float64, priority report.Priority) error {
	return r.db.Model(&report.Report{}).Where("id = ?", id).Updates(map[string]any{
		"priority_score": score,
		"priority":       priority,
	}).Error
}

func (r *DBReportRepo) IncrementUpvotes(id uint) error {
	res := r.db.Model(&report.Report{}).Where("id = ?", id).
		UpdateColumn("upvote_count", gorm.Expr("upvote_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementUpvotes lowers the counter only while it is positive and reports
// whether a row changed.
func (r *DBReportRepo) DecrementUpvotes(id uint) (bool, error) {
	res := r.db.Model(&report.Report{}).Where("id = ? AND upvote_count > 0", id).
		UpdateColumn("upvote_count", gorm.Expr("upvote_count - ?", 1))
	return res.RowsAffected > 0, res.Error
}

func (r *DBReportRepo) ListReports(q report.ListQuery) ([]report.Report, error) {
	var reports []report.Report
	query := r.withDetail().Model(&report.Report{})

	if q.Category != nil {
		query = query.Where("issue_type = ?", *q.Category)
	}
	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Skip > 0 {
		query = query.Offset(q.Skip)
	}

	err := query.Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) ListReportsByUser(userID uint) ([]report.Report, error) {
	var reports []report.Report
	err := r.withDetail().Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) ListReportsByDepartment(deptID uint) ([]report.Report, error) {
	var reports []report.Report
	err := r.withDetail().Where("department_id = ?", deptID).
		Order("priority_score DESC").Order("id ASC").
		Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) ListOverdueReports(now time.Time) ([]report.Report, error) {
	var reports []report.Report
	err := r.withDetail().
		Where("sla_deadline < ?", now).
		Where("status NOT IN ?", []report.Status{report.StatusResolved, report.StatusRejected}).
		Order("sla_deadline ASC").
		Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) WithTx(tx *gorm.DB) ReportRepo {
	if tx == nil {
		return r
	}
	return &DBReportRepo{
		db: tx,
	}
}
