package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Report     ReportRepo
	Department DepartmentRepo
	Vote       VoteRepo
	History    HistoryRepo
	User       UserRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Report:     NewReportRepo(db),
		Department: NewDepartmentRepo(db),
		Vote:       NewVoteRepo(db),
		History:    NewHistoryRepo(db),
		User:       NewUserRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Report:     r.Report.WithTx(tx),
		Department: r.Department.WithTx(tx),
		Vote:       r.Vote.WithTx(tx),
		History:    r.History.WithTx(tx),
		User:       r.User.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn against transaction-bound repositories. Any error returned
// by fn, or a failed commit, rolls back every write made through txRepos.
func (r *Repos) ExecTx(ctx context.Context, fn func(txRepos *Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
