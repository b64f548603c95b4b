//go:build unit

package repository_test

import (
	"context"
	"testing"

	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/infra/repository"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/tests/common/builder"
	"mysterybox-storefront/tests/common/dbtest"
	repositorymock "mysterybox-storefront/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := dbtest.NopDB{}
			mockQueries.EXPECT().UpdateUserLastLogin(gomock.Any(), mockDB, testUserID).Return(tt.mockError)

			repo := repository.NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockDB, testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := dbtest.NopDB{}
		repo := repository.NewUserRepository(mockQueries)

		u, err := builder.NewUserBuilder().WithEmail("ops@example.com").BuildDomain()
		require.NoError(t, err)
		id := uuid.New()
		mockQueries.EXPECT().CreateUser(ctx, mockDB, sqlc.CreateUserParams{
			Email:        "ops@example.com",
			PasswordHash: u.PasswordHash(),
			Role:         u.Role().String(),
			IsActive:     true,
		}).Return(id, nil)

		got, err := repo.Create(ctx, mockDB, u)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := dbtest.NopDB{}
		repo := repository.NewUserRepository(mockQueries)

		mockQueries.EXPECT().CreateUser(ctx, mockDB, gomock.Any()).Return(uuid.Nil, &pgconn.PgError{Code: "23505"})

		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = repo.Create(ctx, mockDB, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
