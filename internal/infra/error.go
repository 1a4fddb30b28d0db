package infra

import (
	"context"
	"errors"
	"log/slog"

	"booking-api/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs and wraps a low-level error. Kind defaults to KindDBFailure;
// KindNotFound is additionally marked with errs.ErrNotFound so use cases can
// react without importing this package.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k == KindNotFound {
		level = slog.LevelDebug
	}
	attrs := []any{slog.String("kind", string(k))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	slog.Log(context.Background(), level, "Repository error: "+msg, attrs...)

	var wrapped error = RepositoryError{Kind: k, msg: msg, err: err}
	switch k {
	case KindNotFound:
		wrapped = errs.Mark(wrapped, errs.ErrNotFound)
	case KindDBFailure:
		wrapped = errs.Mark(wrapped, errs.ErrDatabaseOperationFailed)
	}
	return wrapped
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound  RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure RepositoryErrorKind = "DB_FAILURE"
)
