package handlers

import (
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/internal/events"
	"github.com/linskybing/civictrack/pkg/storage"
)

type Handlers struct {
	Auth       *AuthHandler
	Report     *ReportHandler
	Vote       *VoteHandler
	Department *DepartmentHandler
	Image      *ImageHandler
	Stream     *StreamHandler
}

// New wires handlers to services. store and hub may be nil, which disables
// image uploads and the live feed respectively.
func New(svc *application.Services, store storage.ObjectStore, hub *events.Hub) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		Report:     NewReportHandler(svc.Report),
		Vote:       NewVoteHandler(svc.Vote),
		Department: NewDepartmentHandler(svc.Department, svc.Report),
		Image:      NewImageHandler(store),
		Stream:     NewStreamHandler(hub),
	}
}
