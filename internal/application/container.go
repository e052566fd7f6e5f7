package application

import (
	"time"

	"github.com/linskybing/civictrack/internal/events"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/pkg/clock"
)

type Services struct {
	Department *DepartmentService
	Report     *ReportService
	Vote       *VoteService
	User       *UserService
}

type Options struct {
	Clock    clock.Clock
	Events   events.Publisher
	Metrics  *metrics.Metrics
	TokenTTL time.Duration
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.Real()
	}
	if o.Events == nil {
		o.Events = events.Nop{}
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = 24 * time.Hour
	}
	return o
}

func New(repos *repository.Repos, opts Options) *Services {
	opts = opts.withDefaults()
	return &Services{
		Department: NewDepartmentService(repos),
		Report:     NewReportService(repos, opts),
		Vote:       NewVoteService(repos, opts),
		User:       NewUserService(repos, opts.TokenTTL),
	}
}
