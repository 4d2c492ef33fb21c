package handlers

import (
	"net/http"
	"sort"

	"datacenter-optimizer/internal/api/models"
	"datacenter-optimizer/internal/solver"

	"github.com/gin-gonic/gin"
)

// SolverHandler handles solver-related requests
type SolverHandler struct{}

// NewSolverHandler creates a new solver handler
func NewSolverHandler() *SolverHandler {
	return &SolverHandler{}
}

// ListSolvers handles GET /api/v1/solvers
func (h *SolverHandler) ListSolvers(c *gin.Context) {
	names := solver.Names()
	infos := make([]models.SolverInfo, 0, len(names))
	for name, available := range names {
		infos = append(infos, models.SolverInfo{Name: name, Available: available})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	c.JSON(http.StatusOK, gin.H{"solvers": infos})
}
