package models

import "datacenter-optimizer/internal/model"

// OptimizeResponse wraps a successful optimization run.
type OptimizeResponse struct {
	Success  bool                 `json:"success"`
	Results  *model.ResultsRecord `json:"results"`
	Metadata Metadata             `json:"metadata"`
}

// Metadata describes how the run was produced.
type Metadata struct {
	CapacityMW float64 `json:"capacity_mw"`
	Variant    string  `json:"variant"`
	Source     string  `json:"source"` // "request" or "demo"
}

// SolverInfo reports one backend's availability.
type SolverInfo struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
