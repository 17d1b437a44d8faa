package trace

import (
	"context"
	"sync"

	"toastkit/internal/toast"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span and attribute names emitted by Recorder.
const (
	SpanCycle     = "toast.cycle"
	EventPhase    = "toast.phase"
	AttrToastID   = "toastkit.toast.id"
	AttrPhase     = "toastkit.phase"
	AttrPhaseFrom = "toastkit.phase.from"
)

// Recorder turns toast phase changes into spans: one span per show cycle,
// opened when a toast leaves Hidden and ended when it returns.
// Each transition is recorded as a span event.
type Recorder struct {
	mu     sync.Mutex
	tracer oteltrace.Tracer
	spans  map[string]oteltrace.Span // toast ID -> open cycle span
}

// Ensure Recorder implements toast.Observer.
var _ toast.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder. A nil provider records nothing.
func NewRecorder(tp oteltrace.TracerProvider) *Recorder {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Recorder{
		tracer: tp.Tracer("toastkit/toast"),
		spans:  make(map[string]oteltrace.Span),
	}
}

// PhaseChanged implements toast.Observer.
func (r *Recorder) PhaseChanged(id string, from, to toast.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.spans[id]
	if from == toast.Hidden {
		if ok {
			// A cycle never reported its end; close it before starting anew.
			span.End()
		}
		_, span = r.tracer.Start(context.Background(), SpanCycle,
			oteltrace.WithAttributes(attribute.String(AttrToastID, id)))
		r.spans[id] = span
		ok = true
	}
	if !ok {
		return
	}

	span.AddEvent(EventPhase, oteltrace.WithAttributes(
		attribute.String(AttrPhase, to.String()),
		attribute.String(AttrPhaseFrom, from.String()),
	))
	if to == toast.Hidden {
		span.End()
		delete(r.spans, id)
	}
}

// Open returns the number of cycles currently being recorded.
func (r *Recorder) Open() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spans)
}
