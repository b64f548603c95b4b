package readstore

import (
	"context"

	"mysterybox-storefront/internal/infra"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

// UserReadStore serves staff lookups for login and /auth/me.
type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{queries: queries, db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapLookupErr("user", err)
	}
	return authorizedView(row.ID, row.Email, row.Role, row.IsActive), nil
}

// FindByEmail returns the password hash alongside the view. Inactive users are
// returned too; rejecting them is the caller's decision.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapLookupErr("user", err)
	}
	return authorizedView(row.ID, row.Email, row.Role, row.IsActive), row.PasswordHash, nil
}

func authorizedView(id uuid.UUID, email, role string, active bool) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{ID: id, Email: email, Role: role, IsActive: active}
}
