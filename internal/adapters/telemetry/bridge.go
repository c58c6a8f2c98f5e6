package telemetry

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Sender receives bridge messages; *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor and forwards finished spans to the
// live dashboard as MsgSpanEnd.
type Bridge struct {
	sender Sender
}

// NewBridge returns a Bridge sending to sender. A nil sender drops everything.
func NewBridge(sender Sender) *Bridge {
	return &Bridge{sender: sender}
}

// OnStart does nothing; only completed spans are reported.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd forwards the span.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.sender == nil || !s.SpanContext().IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		err = errors.New(desc)
	}

	attrs := make(map[string]string, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	b.sender.Send(MsgSpanEnd{
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Attrs:    attrs,
		Err:      err,
	})
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}

// NewProvider creates a tracer provider that reports every span to the bridge.
func NewProvider(bridge *Bridge) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
}
