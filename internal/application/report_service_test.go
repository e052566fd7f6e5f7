package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/civictrack/internal/domain/department"
	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/domain/vote"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/internal/repository/mock"
	"github.com/linskybing/civictrack/internal/testutils"
	"github.com/linskybing/civictrack/pkg/clock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type lifecycleMocks struct {
	report  *mock.MockReportRepo
	vote    *mock.MockVoteRepo
	history *mock.MockHistoryRepo
	dept    *mock.MockDepartmentRepo
}

// setupLifecycleMocks backs Repos with a SQLite handle so ExecTx can open a
// transaction, then swaps in mocks whose WithTx returns themselves.
func setupLifecycleMocks(t *testing.T) (*ReportService, *VoteService, lifecycleMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := lifecycleMocks{
		report:  mock.NewMockReportRepo(ctrl),
		vote:    mock.NewMockVoteRepo(ctrl),
		history: mock.NewMockHistoryRepo(ctrl),
		dept:    mock.NewMockDepartmentRepo(ctrl),
	}
	m.report.EXPECT().WithTx(gomock.Any()).DoAndReturn(func(tx *gorm.DB) repository.ReportRepo { return m.report }).AnyTimes()
	m.vote.EXPECT().WithTx(gomock.Any()).DoAndReturn(func(tx *gorm.DB) repository.VoteRepo { return m.vote }).AnyTimes()
	m.history.EXPECT().WithTx(gomock.Any()).DoAndReturn(func(tx *gorm.DB) repository.HistoryRepo { return m.history }).AnyTimes()
	m.dept.EXPECT().WithTx(gomock.Any()).DoAndReturn(func(tx *gorm.DB) repository.DepartmentRepo { return m.dept }).AnyTimes()

	repos := repository.NewRepositories(testutils.NewTestDB(t))
	repos.Report = m.report
	repos.Vote = m.vote
	repos.History = m.history
	repos.Department = m.dept

	opts := Options{Clock: clock.Fake(testutils.Epoch)}
	return NewReportService(repos, opts), NewVoteService(repos, opts), m
}

var citizen = user.Actor{ID: 1, Role: user.RoleCitizen}

func TestUpdateStatus_ForbiddenWritesNothing(t *testing.T) {
	svc, _, m := setupLifecycleMocks(t)

	m.report.EXPECT().GetReportForUpdate(uint(5)).Return(report.Report{ID: 5, Status: report.StatusAssigned}, nil)

	status := report.StatusResolved
	_, err := svc.UpdateStatus(context.Background(), 5, report.UpdateStatusDTO{Status: &status}, citizen)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUpdateStatus_NotFoundBeforeRoleCheck(t *testing.T) {
	svc, _, m := setupLifecycleMocks(t)

	m.report.EXPECT().GetReportForUpdate(uint(5)).Return(report.Report{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(context.Background(), 5, report.UpdateStatusDTO{}, citizen)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestUpdateStatus_UsesLockedRow(t *testing.T) {
	svc, _, m := setupLifecycleMocks(t)
	staff := user.Actor{ID: 2, Role: user.RoleDepartment}
	locked := report.Report{ID: 5, Status: report.StatusAcknowledged, UpvoteCount: 3, CreatedAt: testutils.Epoch}

	gomock.InOrder(
		m.report.EXPECT().GetReportForUpdate(uint(5)).Return(locked, nil),
		m.report.EXPECT().UpdateStatusAndPriority(uint(5), report.StatusInProgress, 60.0, report.PriorityHigh).Return(nil),
		m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *report.StatusHistory) error {
			assert.Equal(t, report.StatusAcknowledged, *h.OldStatus)
			assert.Equal(t, report.StatusInProgress, h.NewStatus)
			return nil
		}),
		m.report.EXPECT().GetReportDetail(uint(5)).Return(report.Report{ID: 5, Status: report.StatusInProgress}, nil),
	)

	status := report.StatusInProgress
	_, err := svc.UpdateStatus(context.Background(), 5, report.UpdateStatusDTO{Status: &status}, staff)
	assert.NoError(t, err)
}

func TestCreateReport_RouterStorageError(t *testing.T) {
	svc, _, m := setupLifecycleMocks(t)

	m.dept.EXPECT().GetDepartmentByName("Road Maintenance").Return(department.Department{}, errors.New("db down"))

	lat, lon := 1.0, 2.0
	_, err := svc.CreateReport(context.Background(), report.CreateReportDTO{
		Title: "t", Description: "d", Category: report.CategoryPothole, Latitude: &lat, Longitude: &lon,
	}, citizen)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCastVote_UniqueViolationIsConflict(t *testing.T) {
	_, votes, m := setupLifecycleMocks(t)

	gomock.InOrder(
		m.report.EXPECT().GetReportForUpdate(uint(5)).Return(report.Report{ID: 5}, nil),
		m.vote.EXPECT().GetVote(uint(1), uint(5)).Return(vote.Vote{}, gorm.ErrRecordNotFound),
		m.vote.EXPECT().CreateVote(gomock.Any()).Return(gorm.ErrDuplicatedKey),
	)

	_, err := votes.CastVote(context.Background(), 5, citizen)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCastVote_IncrementFailureIsStorageError(t *testing.T) {
	_, votes, m := setupLifecycleMocks(t)

	gomock.InOrder(
		m.report.EXPECT().GetReportForUpdate(uint(5)).Return(report.Report{ID: 5}, nil),
		m.vote.EXPECT().GetVote(uint(1), uint(5)).Return(vote.Vote{}, gorm.ErrRecordNotFound),
		m.vote.EXPECT().CreateVote(gomock.Any()).Return(nil),
		m.report.EXPECT().IncrementUpvotes(uint(5)).Return(errors.New("disk full")),
	)

	_, err := votes.CastVote(context.Background(), 5, citizen)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestRemoveVote_GuardedDecrement(t *testing.T) {
	_, votes, m := setupLifecycleMocks(t)

	gomock.InOrder(
		m.vote.EXPECT().GetVote(uint(1), uint(5)).Return(vote.Vote{ID: 3, UserID: 1, ReportID: 5}, nil),
		m.report.EXPECT().DecrementUpvotes(uint(5)).Return(false, nil),
		m.report.EXPECT().GetReportForUpdate(uint(5)).Return(report.Report{ID: 5, CreatedAt: testutils.Epoch}, nil),
		m.report.EXPECT().UpdatePriority(uint(5), 0.0, report.PriorityLow).Return(nil),
		m.vote.EXPECT().DeleteVote(uint(3)).Return(nil),
	)

	assert.NoError(t, votes.RemoveVote(context.Background(), 5, citizen))
}
