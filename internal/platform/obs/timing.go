package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying id for Time and access logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts timing the named operation. The returned func logs its duration
// and, when errp points to a non-nil error, the error.
//
//	defer obs.Time(ctx, logger, "ors.Geocode")(&err)
func Time(ctx context.Context, logger *zap.Logger, name string) func(errp *error) {
	start := time.Now()
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := []zap.Field{zap.String("op", name)}
	if reqID := RequestID(ctx); reqID != "" {
		fields = append(fields, zap.String("req_id", reqID))
	}

	return func(errp *error) {
		fields := append(fields, zap.Int64("dur_ms", time.Since(start).Milliseconds()))

		if errp != nil && *errp != nil {
			logger.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		logger.Debug("operation finished", fields...)
	}
}
