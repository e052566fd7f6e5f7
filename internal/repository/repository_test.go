package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linskybing/civictrack/internal/domain/department"
	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/domain/vote"
	"github.com/linskybing/civictrack/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedDepartmentIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)

	for round := 0; round < 2; round++ {
		for _, seed := range department.Defaults {
			d := seed.Model()
			created, err := repos.Department.SeedDepartment(&d)
			require.NoError(t, err)
			assert.Equal(t, round == 0, created, "%s round %d", seed.Name, round)
		}
	}

	depts, err := repos.Department.ListDepartments()
	require.NoError(t, err)
	assert.Len(t, depts, len(department.Defaults))

	d, err := repos.Department.GetDepartmentByName("Sanitation")
	require.NoError(t, err)
	assert.Equal(t, []string{"garbage"}, []string(d.SupportedCategories))

	_, err = repos.Department.GetDepartmentByName("Parks")
	assert.True(t, IsNotFound(err))
}

func TestVoteUniqueIndex(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	u := testutils.CreateUser(t, db, "voter@example.com", user.RoleCitizen)
	r := testutils.CreateReport(t, db, u.ID, report.CategoryPothole, testutils.Epoch)

	require.NoError(t, repos.Vote.CreateVote(&vote.Vote{UserID: u.ID, ReportID: r.ID, CreatedAt: testutils.Epoch}))
	err := repos.Vote.CreateVote(&vote.Vote{UserID: u.ID, ReportID: r.ID, CreatedAt: testutils.Epoch})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	var n int64
	require.NoError(t, db.Model(&vote.Vote{}).Where("report_id = ?", r.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestUpvoteCounter(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	r := testutils.CreateReport(t, db, 1, report.CategoryGarbage, testutils.Epoch)

	require.NoError(t, repos.Report.IncrementUpvotes(r.ID))
	changed, err := repos.Report.DecrementUpvotes(r.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repos.Report.DecrementUpvotes(r.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := repos.Report.GetReportByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UpvoteCount)

	assert.True(t, IsNotFound(repos.Report.IncrementUpvotes(9999)))
}

func TestGetReportForUpdate(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	r := testutils.CreateReport(t, db, 1, report.CategoryDrainage, testutils.Epoch)

	err := repos.ExecTx(context.Background(), func(tx *Repos) error {
		locked, err := tx.Report.GetReportForUpdate(r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.ID, locked.ID)
		assert.Equal(t, report.StatusSubmitted, locked.Status)

		_, err = tx.Report.GetReportForUpdate(r.ID + 100)
		assert.True(t, IsNotFound(err))
		return nil
	})
	require.NoError(t, err)
}

func TestHistoryOrdering(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	r := testutils.CreateReport(t, db, 1, report.CategoryDrainage, testutils.Epoch)

	staff := uint(2)
	submitted, assigned := report.StatusSubmitted, report.StatusAssigned
	entries := []report.StatusHistory{
		{ReportID: r.ID, OldStatus: &assigned, NewStatus: report.StatusInProgress, ChangedBy: &staff, Timestamp: testutils.Epoch.Add(2 * time.Hour)},
		{ReportID: r.ID, OldStatus: nil, NewStatus: report.StatusSubmitted, Timestamp: testutils.Epoch},
		{ReportID: r.ID, OldStatus: &submitted, NewStatus: report.StatusAssigned, ChangedBy: &staff, Timestamp: testutils.Epoch.Add(time.Hour)},
	}
	for i := range entries {
		require.NoError(t, repos.History.CreateHistory(&entries[i]))
	}

	got, err := repos.History.ListHistory(r.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, report.StatusSubmitted, got[0].NewStatus)
	assert.Equal(t, report.StatusAssigned, got[1].NewStatus)
	assert.Equal(t, report.StatusInProgress, got[2].NewStatus)

	detail, err := repos.Report.GetReportDetail(r.ID)
	require.NoError(t, err)
	require.Len(t, detail.StatusHistory, 3)
	assert.Nil(t, detail.StatusHistory[0].OldStatus)

	byStaff, err := repos.History.GetHistory(HistoryQueryParams{ChangedBy: &staff, Limit: 1})
	require.NoError(t, err)
	require.Len(t, byStaff, 1)
	assert.Equal(t, report.StatusInProgress, byStaff[0].NewStatus)
}

func TestListOverdueReports(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	late := testutils.CreateReport(t, db, 1, report.CategoryGarbage, testutils.Epoch)
	testutils.CreateReport(t, db, 1, report.CategoryOther, testutils.Epoch)
	done := testutils.CreateReport(t, db, 1, report.CategoryGarbage, testutils.Epoch)
	require.NoError(t, repos.Report.UpdateStatusAndPriority(done.ID, report.StatusRejected, 0, report.PriorityLow))

	got, err := repos.Report.ListOverdueReports(testutils.Epoch.Add(30 * time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, late.ID, got[0].ID)
}

func TestExecTxRollsBack(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	boom := errors.New("boom")

	err := repos.ExecTx(context.Background(), func(tx *Repos) error {
		u := user.User{Name: "x", Email: "x@example.com", HashedPassword: "x", Role: user.RoleCitizen, IsActive: true}
		if err := tx.User.CreateUser(&u); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.User.GetUserByEmail("x@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateRole(t *testing.T) {
	db := testutils.NewTestDB(t)
	repos := NewRepositories(db)
	u := testutils.CreateUser(t, db, "staff@example.com", user.RoleCitizen)

	require.NoError(t, repos.User.UpdateRole(u.ID, user.RoleDepartment))
	got, err := repos.User.GetUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleDepartment, got.Role)

	assert.True(t, IsNotFound(repos.User.UpdateRole(999, user.RoleAdmin)))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(errors.New(`pq: duplicate key value violates unique constraint "idx_votes_user_report"`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: votes.user_id, votes.report_id")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}
