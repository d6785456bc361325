package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxis-works/praxis/pkg/orchestrator"
)

// ListDatasources handles GET /datasources.
func (s *Server) ListDatasources(c *gin.Context) {
	list, err := s.datasources.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]DatasourceResponse, 0, len(list))
	for _, ds := range list {
		out = append(out, toDatasourceResponse(ds))
	}
	c.JSON(http.StatusOK, gin.H{"datasources": out})
}

// CreateDatasource handles POST /datasources.
func (s *Server) CreateDatasource(c *gin.Context) {
	var req orchestrator.DatasourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ds, err := s.datasources.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDatasourceResponse(ds))
}

// GetDatasource handles GET /datasources/:id.
func (s *Server) GetDatasource(c *gin.Context) {
	ds, err := s.datasources.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDatasourceResponse(ds))
}

// UpdateDatasource handles PUT /datasources/:id.
func (s *Server) UpdateDatasource(c *gin.Context) {
	var req orchestrator.DatasourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ds, err := s.datasources.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDatasourceResponse(ds))
}

// DeleteDatasource handles DELETE /datasources/:id.
func (s *Server) DeleteDatasource(c *gin.Context) {
	if err := s.datasources.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
