package repository

import (
	"github.com/linskybing/civictrack/internal/domain/vote"
	"gorm.io/gorm"
)

type VoteRepo interface {
	GetVote(userID, reportID uint) (vote.Vote, error)
	CreateVote(v *vote.Vote) error
	DeleteVote(id uint) error
	WithTx(tx *gorm.DB) VoteRepo
}

type DBVoteRepo struct {
	db *gorm.DB
}

func NewVoteRepo(db *gorm.DB) *DBVoteRepo {
	return &DBVoteRepo{
		db: db,
	}
}

func (r *DBVoteRepo) GetVote(userID, reportID uint) (vote.Vote, error) {
	var v vote.Vote
	err := r.db.Where("user_id = ? AND report_id = ?", userID, reportID).First(&v).Error
	return v, err
}

func (r *DBVoteRepo) CreateVote(v *vote.Vote) error {
	return r.db.Create(v).Error
}

func (r *DBVoteRepo) DeleteVote(id uint) error {
	return r.db.Delete(&vote.Vote{}, id).Error
}

func (r *DBVoteRepo) WithTx(tx *gorm.DB) VoteRepo {
	if tx == nil {
		return r
	}
	return &DBVoteRepo{
		db: tx,
	}
}
