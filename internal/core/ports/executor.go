package ports

import (
	"context"

	"go.trai.ch/rjs/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and returns an error if the process fails.
	Execute(ctx context.Context, inv *domain.Invocation) error
}
