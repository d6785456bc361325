package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/orchestrator"
)

// CreateJob handles POST /jobs.
func (s *Server) CreateJob(c *gin.Context) {
	var req orchestrator.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := s.jobs.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job_id": j.ID})
}

// GetJob handles GET /jobs/:id.
func (s *Server) GetJob(c *gin.Context) {
	j, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(j))
}

// ListJobs handles GET /jobs with an optional status filter.
func (s *Server) ListJobs(c *gin.Context) {
	jobs, err := s.jobs.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

// CancelJob handles POST /jobs/:id/cancel.
func (s *Server) CancelJob(c *gin.Context) {
	if err := s.dispatcher.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "cancelling"})
}

// ResumeRequest is the POST /jobs/:id/resume body.
type ResumeRequest struct {
	Approved bool   `json:"approved"`
	Feedback string `json:"feedback,omitempty"`
}

// ResumeJob handles POST /jobs/:id/resume for frozen jobs.
func (s *Server) ResumeJob(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.dispatcher.Resume(c.Request.Context(), c.Param("id"), req.Approved, req.Feedback); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "resuming"})
}

// StatusCallback handles POST /internal/jobs/:id/status from workers.
func (s *Server) StatusCallback(c *gin.Context) {
	var cb models.StatusCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := s.jobs.ApplyCallback(c.Request.Context(), c.Param("id"), cb); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
