package ports

import (
	"context"

	"go.trai.ch/rjs/internal/core/domain"
)

// Toolchain performs the actual bundling described by a spec.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Run executes the build. The toolchain may add its own keys to spec.
	Run(ctx context.Context, spec *domain.Spec) error

	// WorkingDir returns the directory used when a spec names none.
	WorkingDir() string
}
