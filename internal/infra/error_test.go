//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"mysterybox-storefront/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{name: "plain error is a db failure", err: errors.New("conn reset"), wantKind: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), wantKind: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindConflict},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
		{name: "nil cause", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("loading row", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			assert.Contains(t, err.Error(), "loading row")
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
			}
		})
	}
}

func TestIsKindOnForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}

func TestWrapLookupErr(t *testing.T) {
	notFound := infra.WrapLookupErr("flash offer", pgx.ErrNoRows)
	assert.True(t, infra.IsKind(notFound, infra.KindNotFound))
	assert.Contains(t, notFound.Error(), "flash offer not found")

	failed := infra.WrapLookupErr("flash offer", errors.New("conn reset"))
	assert.True(t, infra.IsKind(failed, infra.KindDBFailure))
	assert.Contains(t, failed.Error(), "failed to load flash offer")
}
