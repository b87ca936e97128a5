// Package events is the observability sink for domain events. Emission is
// structured and stateless so multiple instances stay consistent and the
// stream survives restarts with the log output.
package events

import (
	"context"

	"github.com/daxterlabs/daxter-backend/internal/logger"
)

type Emitter interface {
	Emit(ctx context.Context, event string, keysAndValues ...interface{})
}

type logEmitter struct {
	log *logger.Logger
}

// NewLogEmitter emits events through the structured logger.
func NewLogEmitter(baseLog *logger.Logger) Emitter {
	return &logEmitter{log: baseLog.With("component", "events")}
}

func (e *logEmitter) Emit(_ context.Context, event string, keysAndValues ...interface{}) {
	kvs := append([]interface{}{"event", event}, keysAndValues...)
	e.log.Info("domain event", kvs...)
}

// Noop discards every event, for tests and tooling.
type Noop struct{}

func (Noop) Emit(context.Context, string, ...interface{}) {}
