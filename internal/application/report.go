package application

import (
	"context"
	"log/slog"

	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/events"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/pkg/clock"
)

const autoAssignedRemark = "Auto-assigned"

type ReportService struct {
	Repos   *repository.Repos
	clock   clock.Clock
	events  events.Publisher
	metrics *metrics.Metrics
}

func NewReportService(repos *repository.Repos, opts Options) *ReportService {
	opts = opts.withDefaults()
	return &ReportService{
		Repos:   repos,
		clock:   opts.Clock,
		events:  opts.Events,
		metrics: opts.Metrics,
	}
}

// CreateReport routes the report to its department, stamps the SLA deadline
// and records the initial history entry in the same transaction.
func (s *ReportService) CreateReport(ctx context.Context, input report.CreateReportDTO, requester user.Actor) (report.Report, error) {
	if !input.Category.Valid() {
		return report.Report{}, ErrInvalidCategory
	}
	if input.Latitude == nil || input.Longitude == nil {
		return report.Report{}, ErrMissingLocation
	}

	now := s.clock.Now()
	rep := report.Report{
		Title:         input.Title,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		Latitude:      *input.Latitude,
		Longitude:     *input.Longitude,
		Address:       input.Address,
		Status:        report.StatusSubmitted,
		Priority:      report.PriorityLow,
		PriorityScore: 0,
		UpvoteCount:   0,
		SLADeadline:   report.SLADeadline(input.Category, now),
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        requester.ID,
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		dept, err := assignDepartment(tx.Department, input.Category)
		if err != nil {
			return err
		}
		if dept != nil {
			rep.DepartmentID = &dept.ID
			rep.Status = report.StatusAssigned
		}

		if err := tx.Report.CreateReport(&rep); err != nil {
			return storageError("create report", err)
		}

		remark := autoAssignedRemark
		changedBy := requester.ID
		entry := report.StatusHistory{
			ReportID:  rep.ID,
			OldStatus: nil,
			NewStatus: rep.Status,
			Remark:    &remark,
			ChangedBy: &changedBy,
			Timestamp: now,
		}
		if err := tx.History.CreateHistory(&entry); err != nil {
			return storageError("create status history", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.Failure("create_report")
		return report.Report{}, txError("create report", err)
	}

	s.metrics.ReportCreated(string(rep.Category))
	s.events.Publish(events.Event{
		Type:          events.ReportCreated,
		ReportID:      rep.ID,
		ActorID:       requester.ID,
		Status:        string(rep.Status),
		PriorityScore: rep.PriorityScore,
		Priority:      string(rep.Priority),
		At:            now,
	})
	slog.Info("report created", "report_id", rep.ID, "issue_type", rep.Category, "status", rep.Status, "user_id", requester.ID)

	return s.detail(rep.ID)
}

// UpdateStatus sets an optional new status, refreshes the priority score and
// appends a history entry. Any status may follow any other.
func (s *ReportService) UpdateStatus(ctx context.Context, id uint, input report.UpdateStatusDTO, actor user.Actor) (report.Report, error) {
	if input.Status != nil && !input.Status.Valid() {
		return report.Report{}, ErrInvalidStatus
	}

	now := s.clock.Now()
	var updated report.Report
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		// Held until commit; votes and other status updates wait on it.
		rep, err := tx.Report.GetReportForUpdate(id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrReportNotFound
			}
			return storageError("get report", err)
		}
		if !actor.Role.CanManageReports() {
			return ErrNotAuthorized
		}

		oldStatus := rep.Status
		if input.Status != nil {
			rep.Status = *input.Status
		}
		rep.RefreshPriority(now)

		if err := tx.Report.UpdateStatusAndPriority(rep.ID, rep.Status, rep.PriorityScore, rep.Priority); err != nil {
			return storageError("update report status", err)
		}

		changedBy := actor.ID
		entry := report.StatusHistory{
			ReportID:  rep.ID,
			OldStatus: &oldStatus,
			NewStatus: rep.Status,
			Remark:    input.Remark,
			ChangedBy: &changedBy,
			Timestamp: now,
		}
		if err := tx.History.CreateHistory(&entry); err != nil {
			return storageError("create status history", err)
		}
		updated = rep
		return nil
	})
	if err != nil {
		s.metrics.Failure("update_status")
		return report.Report{}, txError("update status", err)
	}

	s.metrics.StatusChanged(string(updated.Status))
	s.events.Publish(events.Event{
		Type:          events.ReportStatusChanged,
		ReportID:      updated.ID,
		ActorID:       actor.ID,
		Status:        string(updated.Status),
		UpvoteCount:   updated.UpvoteCount,
		PriorityScore: updated.PriorityScore,
		Priority:      string(updated.Priority),
		At:            now,
	})

	return s.detail(updated.ID)
}

func (s *ReportService) GetReport(id uint) (report.Report, error) {
	return s.detail(id)
}

func (s *ReportService) detail(id uint) (report.Report, error) {
	rep, err := s.Repos.Report.GetReportDetail(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return report.Report{}, ErrReportNotFound
		}
		return report.Report{}, storageError("get report", err)
	}
	rep.MarkSLA(s.clock.Now())
	return rep, nil
}

func (s *ReportService) ListReports(q report.ListQuery) ([]report.Report, error) {
	if q.Category != nil && !q.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if q.Status != nil && !q.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	q.Normalize()

	reports, err := s.Repos.Report.ListReports(q)
	if err != nil {
		return nil, storageError("list reports", err)
	}
	return s.markSLA(reports), nil
}

func (s *ReportService) ListMyReports(userID uint) ([]report.Report, error) {
	reports, err := s.Repos.Report.ListReportsByUser(userID)
	if err != nil {
		return nil, storageError("list user reports", err)
	}
	return s.markSLA(reports), nil
}

// ListByDepartment returns the department's reports, highest priority first.
func (s *ReportService) ListByDepartment(deptID uint) ([]report.Report, error) {
	if _, err := s.Repos.Department.GetDepartmentByID(deptID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, storageError("get department", err)
	}
	reports, err := s.Repos.Report.ListReportsByDepartment(deptID)
	if err != nil {
		return nil, storageError("list department reports", err)
	}
	return s.markSLA(reports), nil
}

// ListOverdue returns open reports whose SLA deadline has passed.
func (s *ReportService) ListOverdue() ([]report.Report, error) {
	reports, err := s.Repos.Report.ListOverdueReports(s.clock.Now())
	if err != nil {
		return nil, storageError("list overdue reports", err)
	}
	return s.markSLA(reports), nil
}

// History returns the report's audit trail, oldest first.
func (s *ReportService) History(reportID uint) ([]report.StatusHistory, error) {
	if _, err := s.Repos.Report.GetReportByID(reportID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, storageError("get report", err)
	}
	entries, err := s.Repos.History.ListHistory(reportID)
	if err != nil {
		return nil, storageError("list status history", err)
	}
	return entries, nil
}

// AuditLog searches status history across reports, newest first.
func (s *ReportService) AuditLog(q report.AuditQuery) ([]report.StatusHistory, error) {
	if !q.Start.IsZero() && !q.End.IsZero() && q.End.Before(q.Start) {
		return nil, ErrInvalidTimeRange
	}

	params := repository.HistoryQueryParams{Offset: q.Skip, Limit: q.Limit}
	if params.Limit <= 0 || params.Limit > report.MaxListLimit {
		params.Limit = report.DefaultListLimit
	}
	if q.ReportID != 0 {
		params.ReportID = &q.ReportID
	}
	if q.ChangedBy != 0 {
		params.ChangedBy = &q.ChangedBy
	}
	if !q.Start.IsZero() {
		start := q.Start.UTC()
		params.StartTime = &start
	}
	if !q.End.IsZero() {
		end := q.End.UTC()
		params.EndTime = &end
	}

	entries, err := s.Repos.History.GetHistory(params)
	if err != nil {
		return nil, storageError("search status history", err)
	}
	return entries, nil
}

func (s *ReportService) markSLA(reports []report.Report) []report.Report {
	now := s.clock.Now()
	for i := range reports {
		reports[i].MarkSLA(now)
	}
	return reports
}
