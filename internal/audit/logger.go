package audit

import (
	"context"

	"github.com/dangerclosesec/modgate/internal/model"
)

// Recorder persists activation attempts
type Recorder interface {
	// RecordAttempt stores one activation or deactivation attempt
	RecordAttempt(ctx context.Context, attempt *model.ActivationAttempt) error
}

// NoOpRecorder is a recorder that does nothing
type NoOpRecorder struct{}

// RecordAttempt implements Recorder.RecordAttempt
func (NoOpRecorder) RecordAttempt(ctx context.Context, attempt *model.ActivationAttempt) error {
	return nil
}

// RequestInfo is the transport metadata attached to recorded attempts
type RequestInfo struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

type requestInfoKey struct{}

// WithRequestInfo returns a context carrying info
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFrom returns the request metadata stored in ctx, if any
func RequestInfoFrom(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}
