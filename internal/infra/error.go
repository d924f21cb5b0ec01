package infra

import (
	"errors"
	"log/slog"

	"tickettock/internal/pkg/errs"
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

// WrapRepoErr defaults to KindDBFailure when no kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	if k.isFailure() {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsFailure reports whether err is an infrastructure failure rather than an
// expected outcome such as NOT_FOUND or ALREADY_RESERVED.
func IsFailure(err error) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind.isFailure()
	}
	return err != nil
}

func (k RepositoryErrorKind) isFailure() bool {
	switch k {
	case KindDBFailure, KindKVFailure, KindBrokerFailure:
		return true
	default:
		return false
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound        RepositoryErrorKind = "NOT_FOUND"
	KindAlreadyReserved RepositoryErrorKind = "ALREADY_RESERVED"
	KindDBFailure       RepositoryErrorKind = "DB_FAILURE"
	KindKVFailure       RepositoryErrorKind = "KV_FAILURE"
	KindBrokerFailure   RepositoryErrorKind = "BROKER_FAILURE"
)
