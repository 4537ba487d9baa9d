package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dangerclosesec/modgate/internal/domain"
)

var domainErrors = []error{
	domain.ErrNotFound,
	domain.ErrInvalidInput,
	domain.ErrUnauthorized,
	domain.ErrModuleNotFound,
	domain.ErrInvalidPermissionType,
	domain.ErrOrganizationNotFound,
	domain.ErrUserNotFound,
	domain.ErrForbidden,
}

// retryable reports whether err looks like a transient persistence failure.
func retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return false
		}
	}
	return true
}

// retryRead runs an idempotent read and retries it once on a transient failure.
// Writes never go through here.
func retryRead[T any](ctx context.Context, op string, fn func(context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	if !retryable(err) {
		return v, err
	}

	slog.WarnContext(ctx, "retrying read after failure", "op", op, "error", err)
	return fn(ctx)
}
