// Package api exposes the orchestrator's HTTP surface: job submission and
// lifecycle, datasource CRUD, worker status callbacks, and health probes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praxis-works/praxis/pkg/database"
	"github.com/praxis-works/praxis/pkg/orchestrator"
	"github.com/praxis-works/praxis/pkg/version"
)

// Server wires the orchestrator services into gin handlers.
type Server struct {
	db          *database.Client
	jobs        *orchestrator.JobService
	datasources *orchestrator.DatasourceService
	dispatcher  *orchestrator.Dispatcher
}

// NewServer creates a new API server.
func NewServer(db *database.Client, jobs *orchestrator.JobService, datasources *orchestrator.DatasourceService, dispatcher *orchestrator.Dispatcher) *Server {
	return &Server{
		db:          db,
		jobs:        jobs,
		datasources: datasources,
		dispatcher:  dispatcher,
	}
}

// Router builds the gin engine with all orchestrator routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/jobs", s.CreateJob)
	r.GET("/jobs", s.ListJobs)
	r.GET("/jobs/:id", s.GetJob)
	r.POST("/jobs/:id/cancel", s.CancelJob)
	r.POST("/jobs/:id/resume", s.ResumeJob)

	r.GET("/datasources", s.ListDatasources)
	r.POST("/datasources", s.CreateDatasource)
	r.GET("/datasources/:id", s.GetDatasource)
	r.PUT("/datasources/:id", s.UpdateDatasource)
	r.DELETE("/datasources/:id", s.DeleteDatasource)

	r.POST("/internal/jobs/:id/status", s.StatusCallback)

	r.GET("/health", s.Health)
	r.GET("/ready", s.Ready)
	return r
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// Ready reports readiness to accept traffic.
func (s *Server) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
