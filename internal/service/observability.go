package service

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// ActionEvent describes one simulated action after it finished.
type ActionEvent struct {
	Action string
	// ReceiptID is empty when the action was rejected.
	ReceiptID string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    map[string]any
}

// Succeeded reports whether the action produced a receipt.
func (e ActionEvent) Succeeded() bool { return e.Err == nil }

// ActionObserver is told about every create and finalize action.
type ActionObserver interface {
	ObserveAction(ctx context.Context, event ActionEvent)
}

// ActionObserverFunc adapts a function to ActionObserver.
type ActionObserverFunc func(ctx context.Context, event ActionEvent)

func (f ActionObserverFunc) ObserveAction(ctx context.Context, event ActionEvent) { f(ctx, event) }

// NoopActionObserver drops every event.
type NoopActionObserver struct{}

func (NoopActionObserver) ObserveAction(context.Context, ActionEvent) {}

// NewActionLogger writes one slog text line per action to w. A nil writer
// disables logging.
func NewActionLogger(w io.Writer) ActionObserver {
	if w == nil {
		return NoopActionObserver{}
	}
	return NewSlogActionObserver(slog.New(slog.NewTextHandler(w, nil)))
}

// NewSlogActionObserver reports actions through logger.
func NewSlogActionObserver(logger *slog.Logger) ActionObserver {
	if logger == nil {
		return NoopActionObserver{}
	}
	return &slogActionObserver{logger: logger}
}

type slogActionObserver struct {
	logger *slog.Logger
}

func (o *slogActionObserver) ObserveAction(ctx context.Context, e ActionEvent) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("action", e.Action),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
		slog.Bool("success", e.Succeeded()),
	}
	if e.ReceiptID != "" {
		attrs = append(attrs, slog.String("receipt_id", e.ReceiptID))
	}
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		attrs = append(attrs, slog.Any(k, e.Fields[k]))
	}
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "fieldops_action", attrs...)
}

// actionObservers fans one event out to several observers.
type actionObservers []ActionObserver

func (a actionObservers) ObserveAction(ctx context.Context, e ActionEvent) {
	for _, o := range a {
		o.ObserveAction(ctx, e)
	}
}

// combineObservers drops nil entries and returns the cheapest observer
// that reaches the rest.
func combineObservers(observers []ActionObserver) ActionObserver {
	var live actionObservers
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return NoopActionObserver{}
	case 1:
		return live[0]
	default:
		return live
	}
}
