package infra

import (
	"errors"
	"log/slog"

	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/pkg/pgconv"
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

// WrapRepoErr classifies err by kind (explicit, else derived from the SQLSTATE) and logs it once.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// not-found is an expected outcome for lookups
	if k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

// WrapLookupErr is WrapRepoErr for single-row reads: pgx.ErrNoRows becomes
// KindNotFound, anything else a classified failure.
func WrapLookupErr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return WrapRepoErr(what+" not found", err, KindNotFound)
	}
	return WrapRepoErr("failed to load "+what, err)
}

func classify(err error) RepositoryErrorKind {
	switch pgconv.PgErrorCode(err) {
	case pgconv.PgErrCodeUniqueViolation:
		return KindDuplicateKey
	case pgconv.PgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgconv.PgErrCodeCheckViolation:
		return KindConflict
	default:
		return KindDBFailure
	}
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
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
