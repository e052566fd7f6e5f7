package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/api/handlers"
	"github.com/linskybing/civictrack/internal/api/middleware"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Logger      *slog.Logger
	CORSOrigins []string

	// Auth reloads the token's user per request. Without it the role in the
	// token is trusted until expiry.
	Auth *middleware.Auth

	// RateCounter is nil when Redis is not configured; report creation is
	// then unlimited.
	RateCounter  middleware.Counter
	ReportLimit  int64
	ReportWindow time.Duration

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the engine with global middleware and every route.
func NewRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(opts.Logger))
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))
	RegisterRoutes(r, h, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, opts Options) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.MessageResponse{Message: "civictrack API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	authenticated := []gin.HandlerFunc{middleware.JWTAuthMiddleware()}
	if opts.Auth != nil {
		authenticated = append(authenticated, opts.Auth.CurrentUser())
	}

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", append(authenticated, h.Auth.Me)...)
	}

	auth := api.Group("")
	auth.Use(authenticated...)

	auth.PUT("/users/:id/role", middleware.Admin(), h.Auth.UpdateRole)

	reports := auth.Group("/reports")
	{
		reports.POST("",
			middleware.ReportRateLimiter(opts.RateCounter, opts.ReportLimit, opts.ReportWindow, opts.Metrics),
			h.Report.CreateReport)
		reports.GET("", h.Report.ListReports)
		reports.GET("/my", h.Report.ListMyReports)
		reports.GET("/overdue", middleware.Staff(), h.Report.ListOverdue)
		reports.POST("/images", h.Image.Upload)
		reports.GET("/:id", h.Report.GetReport)
		reports.GET("/:id/history", h.Report.History)
		reports.PATCH("/:id/status", h.Report.UpdateStatus)
	}

	auth.GET("/history", middleware.Staff(), h.Report.AuditLog)

	votes := auth.Group("/votes")
	{
		votes.POST("/:report_id", h.Vote.CastVote)
		votes.DELETE("/:report_id", h.Vote.RemoveVote)
	}

	departments := auth.Group("/departments")
	{
		departments.GET("", h.Department.ListDepartments)
		departments.GET("/:id/reports", h.Department.ListReports)
	}

	ws := r.Group("/ws")
	ws.Use(authenticated...)
	{
		ws.GET("/reports", h.Stream.StreamReports)
	}
}
