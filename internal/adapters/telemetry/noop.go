// Package telemetry provides progress recording adapters.
package telemetry

import (
	"context"

	"go.trai.ch/relock/internal/core/ports"
)

// NoOp is a ports.Telemetry implementation that records nothing.
type NoOp struct{}

// NewNoOp creates a no-op recorder.
func NewNoOp() *NoOp { return &NoOp{} }

// Record returns a no-op vertex, attached to the context like any
// other recorder would.
func (*NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ports.ContextWithVertex(ctx, NoOpVertex{}), NoOpVertex{}
}

// Close does nothing.
func (*NoOp) Close() error { return nil }

// NoOpVertex is a vertex that discards everything.
type NoOpVertex struct{}

// Log does nothing.
func (NoOpVertex) Log(string) {}

// Complete does nothing.
func (NoOpVertex) Complete(error) {}
