package mocks

import (
	"context"

	"devserver/core/launcher"

	"github.com/stretchr/testify/mock"
)

// Runner is a mock implementation of launcher.Runner
type Runner struct {
	mock.Mock
}

func (m *Runner) Start(ctx context.Context, c launcher.Command) (launcher.Process, error) {
	args := m.Called(ctx, c)
	if p, ok := args.Get(0).(launcher.Process); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// Process is a mock implementation of launcher.Process
type Process struct {
	mock.Mock
}

func (m *Process) Wait() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// PortFinder is a mock implementation of launcher.PortFinder
type PortFinder struct {
	mock.Mock
}

func (m *PortFinder) FindAvailablePort(ctx context.Context, host string, startPort, maxRetries int) (int, error) {
	args := m.Called(ctx, host, startPort, maxRetries)
	return args.Int(0), args.Error(1)
}
