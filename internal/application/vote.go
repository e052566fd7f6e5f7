package application

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/domain/vote"
	"github.com/linskybing/civictrack/internal/events"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/pkg/clock"
)

type VoteService struct {
	Repos   *repository.Repos
	clock   clock.Clock
	events  events.Publisher
	metrics *metrics.Metrics
}

func NewVoteService(repos *repository.Repos, opts Options) *VoteService {
	opts = opts.withDefaults()
	return &VoteService{
		Repos:   repos,
		clock:   opts.Clock,
		events:  opts.Events,
		metrics: opts.Metrics,
	}
}

// CastVote records one vote per (voter, report), bumps the counter and
// refreshes the priority score. A concurrent duplicate that slips past the
// lookup is caught by the unique index and reported as ErrAlreadyVoted.
func (s *VoteService) CastVote(ctx context.Context, reportID uint, voter user.Actor) (report.Report, error) {
	now := s.clock.Now()
	var updated report.Report
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Report.GetReportForUpdate(reportID); err != nil {
			if repository.IsNotFound(err) {
				return ErrReportNotFound
			}
			return storageError("get report", err)
		}

		_, err := tx.Vote.GetVote(voter.ID, reportID)
		switch {
		case err == nil:
			return ErrAlreadyVoted
		case !repository.IsNotFound(err):
			return storageError("get vote", err)
		}

		v := vote.Vote{UserID: voter.ID, ReportID: reportID, CreatedAt: now}
		if err := tx.Vote.CreateVote(&v); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrAlreadyVoted
			}
			return storageError("create vote", err)
		}

		if err := tx.Report.IncrementUpvotes(reportID); err != nil {
			return storageError("increment upvotes", err)
		}

		rep, err := refreshPriority(tx.Report, reportID, now)
		if err != nil {
			return err
		}
		updated = rep
		return nil
	})
	if err != nil {
		s.metrics.Failure("cast_vote")
		return report.Report{}, txError("cast vote", err)
	}

	s.metrics.Vote("cast")
	s.publish(events.VoteCast, updated, voter.ID)
	updated.MarkSLA(now)
	return updated, nil
}

// RemoveVote deletes the voter's vote and lowers the counter, never below
// zero. The vote is deleted even if its report is gone.
func (s *VoteService) RemoveVote(ctx context.Context, reportID uint, voter user.Actor) error {
	now := s.clock.Now()
	var (
		updated report.Report
		found   bool
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		v, err := tx.Vote.GetVote(voter.ID, reportID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrVoteNotFound
			}
			return storageError("get vote", err)
		}

		if _, err := tx.Report.DecrementUpvotes(reportID); err != nil {
			return storageError("decrement upvotes", err)
		}

		rep, err := refreshPriority(tx.Report, reportID, now)
		switch {
		case err == nil:
			updated, found = rep, true
		case !errors.Is(err, ErrReportNotFound):
			return err
		}

		if err := tx.Vote.DeleteVote(v.ID); err != nil {
			return storageError("delete vote", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.Failure("remove_vote")
		return txError("remove vote", err)
	}

	s.metrics.Vote("remove")
	if found {
		s.publish(events.VoteRemoved, updated, voter.ID)
	}
	return nil
}

// refreshPriority rereads the counter under a row lock and stores the
// recomputed score.
func refreshPriority(repo repository.ReportRepo, id uint, now time.Time) (report.Report, error) {
	rep, err := repo.GetReportForUpdate(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return report.Report{}, ErrReportNotFound
		}
		return report.Report{}, storageError("get report", err)
	}
	rep.RefreshPriority(now)
	if err := repo.UpdatePriority(rep.ID, rep.PriorityScore, rep.Priority); err != nil {
		return report.Report{}, storageError("update priority", err)
	}
	return rep, nil
}

func (s *VoteService) publish(t events.Type, rep report.Report, actorID uint) {
	s.events.Publish(events.Event{
		Type:          t,
		ReportID:      rep.ID,
		ActorID:       actorID,
		Status:        string(rep.Status),
		UpvoteCount:   rep.UpvoteCount,
		PriorityScore: rep.PriorityScore,
		Priority:      string(rep.Priority),
		At:            s.clock.Now(),
	})
}
