package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
)

// TapeBridge implements sdktrace.SpanProcessor to mirror OTel spans onto the
// progress tape: every span becomes a vertex that completes when the span
// ends, carrying the span's error status.
type TapeBridge struct {
	recorder ports.Telemetry

	mu       sync.Mutex
	vertices map[trace.SpanID]ports.Vertex
}

// NewTapeBridge returns a new TapeBridge over the given recorder.
func NewTapeBridge(recorder ports.Telemetry) *TapeBridge {
	return &TapeBridge{
		recorder: recorder,
		vertices: make(map[trace.SpanID]ports.Vertex),
	}
}

// OnStart is called when a span starts.
func (b *TapeBridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.recorder == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	_, vertex := b.recorder.Record(parent, s.Name())

	b.mu.Lock()
	b.vertices[sc.SpanID()] = vertex
	b.mu.Unlock()
}

// OnEnd is called when a span ends.
func (b *TapeBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.mu.Lock()
	vertex, ok := b.vertices[sc.SpanID()]
	delete(b.vertices, sc.SpanID())
	b.mu.Unlock()
	if !ok {
		return
	}

	// Replay the span's log events onto the vertex before completing it.
	for _, event := range s.Events() {
		if event.Name != "log" {
			continue
		}
		for _, attr := range event.Attributes {
			if string(attr.Key) == "message" {
				_, _ = fmt.Fprint(vertex.Stdout(), attr.Value.AsString())
			}
		}
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "step failed"
		}
		err = errors.New(desc)
		vertex.Log(domain.LogLevelError, desc)
	}
	vertex.Complete(err)
}

// ForceFlush does nothing.
func (b *TapeBridge) ForceFlush(ctx context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *TapeBridge) Shutdown(ctx context.Context) error {
	return nil
}
