package services

import (
	"context"

	"rentorbuy/internal/models"
	"rentorbuy/internal/pagination"
	"rentorbuy/internal/simulation"
)

// SimulationServicer defines the contract for running rent-vs-buy scenarios.
type SimulationServicer interface {
	Simulate(ctx context.Context, input simulation.Input) (*simulation.Output, error)
	Schedule(ctx context.Context, loan simulation.LoanInput) (*simulation.Schedule, error)
}

// AuditServicer defines the contract for the request audit trail.
type AuditServicer interface {
	Log(entry AuditEntry)
	List(action models.AuditAction, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

// AuditEntry is the metadata recorded for one handled request.
type AuditEntry struct {
	RequestID  string
	Action     models.AuditAction
	ClientIP   string
	StatusCode int
	ErrorCode  string
	Horizon    int
	LatencyMS  int64
}
