package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InjectTraceID attaches a logger carrying a fresh trace id to ctx. Loggers
// already attached to ctx are extended, so fields set by callers are kept.
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	logger := log.Ctx(ctx).With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// InjectTracker attaches the tracked entity id to the ctx logger
func InjectTracker(ctx context.Context, trackerID string) context.Context {
	logger := log.Ctx(ctx).With().Str("tracker", trackerID).Logger()
	return logger.WithContext(ctx)
}
