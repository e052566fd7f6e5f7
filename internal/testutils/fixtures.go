package testutils

import (
	"testing"
	"time"

	"github.com/linskybing/civictrack/internal/domain/department"
	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/domain/vote"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Epoch is a fixed whole-second UTC instant for clock-driven tests.
var Epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func SeedDepartments(t testing.TB, db *gorm.DB) []department.Department {
	t.Helper()
	depts := make([]department.Department, 0, len(department.Defaults))
	for _, seed := range department.Defaults {
		d := seed.Model()
		require.NoError(t, db.Create(&d).Error)
		depts = append(depts, d)
	}
	return depts
}

func CreateUser(t testing.TB, db *gorm.DB, email string, role user.Role) user.User {
	t.Helper()
	u := user.User{
		Name:           email,
		Email:          email,
		HashedPassword: "x",
		Role:           role,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// CreateReport inserts a report row directly, bypassing the lifecycle.
func CreateReport(t testing.TB, db *gorm.DB, owner uint, category report.Category, createdAt time.Time) report.Report {
	t.Helper()
	r := report.Report{
		Title:       "Broken " + string(category),
		Description: "needs fixing",
		Category:    category,
		Latitude:    12.97,
		Longitude:   77.59,
		Status:      report.StatusSubmitted,
		Priority:    report.PriorityLow,
		SLADeadline: report.SLADeadline(category, createdAt),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		UserID:      owner,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

// Snapshot captures every row the lifecycle operations write.
type Snapshot struct {
	Reports []report.Report
	Votes   []vote.Vote
	History []report.StatusHistory
}

func TakeSnapshot(t testing.TB, db *gorm.DB) Snapshot {
	t.Helper()
	var s Snapshot
	require.NoError(t, db.Order("id").Find(&s.Reports).Error)
	require.NoError(t, db.Order("id").Find(&s.Votes).Error)
	require.NoError(t, db.Order("id").Find(&s.History).Error)
	return s
}
