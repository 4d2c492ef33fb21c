package handlers

import (
	"errors"
	"log"
	"math/rand"
	"net/http"
	"time"

	"datacenter-optimizer/internal/api/models"
	"datacenter-optimizer/internal/data"
	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/optimizer"
	"datacenter-optimizer/internal/solver"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler handles optimization requests
type OptimizeHandler struct{}

// NewOptimizeHandler creates a new optimize handler
func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{}
}

// Optimize handles POST /api/v1/optimize
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	profile, err := model.NewHourlyProfile(req.Temperatures, req.Prices)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
			},
		})
		return
	}

	h.run(c, profile, req.CapacityMW, optimizer.Options{
		Variant:    optimizer.Variant(req.Variant),
		Solver:     req.Solver,
		TimeLimit:  time.Duration(req.TimeLimitSeconds) * time.Second,
		GridDemand: req.GridDemand,
	}, "request")
}

// OptimizeDemo handles POST /api/v1/optimize/demo
func (h *OptimizeHandler) OptimizeDemo(c *gin.Context) {
	// The body is optional; an empty one means default capacity and jitter.
	var req models.DemoRequest
	_ = c.ShouldBindJSON(&req)

	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}
	profile, err := model.NewHourlyProfile(data.PhoenixTemperatures(rng), data.TOUPrices(rng))
	if err != nil {
		// Generator output is valid by construction.
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
		return
	}

	h.run(c, profile, req.CapacityMW, optimizer.Options{}, "demo")
}

func (h *OptimizeHandler) run(c *gin.Context, profile *model.HourlyProfile, capacityMW float64, opts optimizer.Options, source string) {
	if capacityMW == 0 {
		capacityMW = model.ReferenceCapacityMW
	}
	facility, err := model.NewFacilityParams(capacityMW)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CAPACITY",
				Message: err.Error(),
			},
		})
		return
	}

	results, err := optimizer.Run(profile, facility, opts)
	if err != nil {
		status, code := classifySolveError(err)
		log.Printf("optimization failed (%s): %v", code, err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	variant := opts.Variant
	if variant == "" {
		variant = optimizer.VariantLinear
	}
	c.JSON(http.StatusOK, models.OptimizeResponse{
		Success: true,
		Results: results,
		Metadata: models.Metadata{
			CapacityMW: capacityMW,
			Variant:    string(variant),
			Source:     source,
		},
	})
}

// classifySolveError maps optimizer/solver failures onto HTTP semantics:
// unusable input is 4xx, missing backends and timeouts are upstream-ish 5xx.
func classifySolveError(err error) (int, string) {
	var (
		unknown    *solver.UnknownBackendError
		noSolver   *solver.NoSolverAvailableError
		infeasible *solver.InfeasibleError
		unbounded  *solver.UnboundedError
		timeout    *solver.TimeoutError
	)
	switch {
	case errors.As(err, &unknown):
		return http.StatusBadRequest, "UNKNOWN_SOLVER"
	case errors.As(err, &noSolver):
		return http.StatusServiceUnavailable, "NO_SOLVER_AVAILABLE"
	case errors.As(err, &infeasible):
		return http.StatusUnprocessableEntity, "INFEASIBLE"
	case errors.As(err, &unbounded):
		return http.StatusUnprocessableEntity, "UNBOUNDED"
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout, "SOLVER_TIMEOUT"
	default:
		return http.StatusInternalServerError, "OPTIMIZATION_ERROR"
	}
}
