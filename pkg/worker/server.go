package worker

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/version"
)

// Server is the orchestrator-facing HTTP surface of a worker.
type Server struct {
	runner *Runner
}

// NewServer wraps a runner.
func NewServer(runner *Runner) *Server {
	return &Server{runner: runner}
}

// Router builds the gin engine with all worker routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/start", s.Start)
	r.POST("/resume", s.Resume)
	r.POST("/cancel", s.Cancel)
	r.GET("/status", s.Status)
	r.GET("/health", s.Health)
	r.GET("/ready", s.Ready)
	return r
}

// Start handles POST /start: accept a JobStart payload and take the
// single-job lease.
func (s *Server) Start(c *gin.Context) {
	var payload models.JobStart
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.runner.Start(&payload); err != nil {
		if errors.Is(err, ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": payload.JobID})
}

// Resume handles POST /resume: continue a frozen job from its last
// checkpoint.
func (s *Server) Resume(c *gin.Context) {
	var payload models.JobResume
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.runner.Resume(&payload); err != nil {
		if errors.Is(err, ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": payload.JobID})
}

// Cancel handles POST /cancel: set the cooperative flag on the current
// job.
func (s *Server) Cancel(c *gin.Context) {
	var payload struct {
		JobID string `json:"job_id"`
	}
	// Body is optional: an empty cancel targets whatever job is running.
	_ = c.ShouldBindJSON(&payload)

	if err := s.runner.Cancel(payload.JobID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "cancelling"})
}

// Status handles GET /status.
func (s *Server) Status(c *gin.Context) {
	c.JSON(http.StatusOK, s.runner.Status())
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
}

// Ready handles GET /ready.
func (s *Server) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
