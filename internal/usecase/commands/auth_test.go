//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/jwt"
	"mysterybox-storefront/internal/pkg/password"
	"mysterybox-storefront/internal/usecase/commands"
	"mysterybox-storefront/internal/usecase/queries"
	commandsmock "mysterybox-storefront/tests/mock/commands"
	queriesmock "mysterybox-storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPassword = "correct-horse-battery"

func hashed(t *testing.T) string {
	t.Helper()
	h, err := password.HashPasswordWithCost(testPassword, 4)
	require.NoError(t, err)
	return h
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	operator := &queries.AuthorizedUserView{ID: uuid.New(), Email: "ops@mysterybox.test", Role: "operator", IsActive: true}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)

		store.EXPECT().FindByEmail(ctx, operator.Email).Return(operator, hashed(t), nil)
		m.expectWithin(1)
		m.users.EXPECT().UpdateLastLogin(ctx, m.db, operator.ID).Return(nil)

		res, err := commands.NewAuthCommands(m.uow, store, jwtService).Login(ctx, operator.Email, testPassword)
		require.NoError(t, err)
		assert.Equal(t, operator.ID, res.UserID)
		assert.Equal(t, user.RoleOperator, res.Role)

		claims, err := jwtService.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("last login failure does not fail login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)

		store.EXPECT().FindByEmail(ctx, operator.Email).Return(operator, hashed(t), nil)
		m.expectWithin(1)
		m.users.EXPECT().UpdateLastLogin(ctx, m.db, operator.ID).Return(errors.New("db down"))

		_, err := commands.NewAuthCommands(m.uow, store, jwtService).Login(ctx, operator.Email, testPassword)
		require.NoError(t, err)
	})

	tests := []struct {
		name     string
		email    string
		pass     string
		setup    func(store *queriesmock.MockUserReadStore)
		expected error
	}{
		{
			name:     "malformed email",
			email:    "not-an-email",
			pass:     testPassword,
			setup:    func(*queriesmock.MockUserReadStore) {},
			expected: commands.ErrAuthenticationFailed,
		},
		{
			name:  "unknown user looks like a bad password",
			email: "ghost@mysterybox.test",
			pass:  testPassword,
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByEmail(gomock.Any(), "ghost@mysterybox.test").
					Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
			expected: commands.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			email: operator.Email,
			pass:  "wrong-password",
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByEmail(gomock.Any(), operator.Email).Return(operator, hashed(t), nil)
			},
			expected: commands.ErrInvalidCredentials,
		},
		{
			name:  "inactive user",
			email: operator.Email,
			pass:  testPassword,
			setup: func(store *queriesmock.MockUserReadStore) {
				inactive := *operator
				inactive.IsActive = false
				store.EXPECT().FindByEmail(gomock.Any(), operator.Email).Return(&inactive, hashed(t), nil)
			},
			expected: commands.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			store := queriesmock.NewMockUserReadStore(ctrl)
			tt.setup(store)

			_, err := commands.NewAuthCommands(m.uow, store, jwtService).Login(ctx, tt.email, tt.pass)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("token generation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)
		tokens := commandsmock.NewMockTokenService(ctrl)

		store.EXPECT().FindByEmail(ctx, operator.Email).Return(operator, hashed(t), nil)
		tokens.EXPECT().GenerateAccessToken(operator.ID, user.RoleOperator).Return("", errors.New("signing failed"))

		_, err := commands.NewAuthCommands(m.uow, store, tokens).Login(ctx, operator.Email, testPassword)
		assert.ErrorIs(t, err, commands.ErrTokenGeneration)
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("refresh uses the stored role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)

		refresh, err := jwtService.GenerateRefreshToken(userID, user.RoleAdmin)
		require.NoError(t, err)
		store.EXPECT().FindByID(ctx, userID).Return(&queries.AuthorizedUserView{ID: userID, Role: "operator", IsActive: true}, nil)

		pair, err := commands.NewAuthCommands(m.uow, store, jwtService).RefreshToken(ctx, refresh)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Role)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)

		access, err := jwtService.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = commands.NewAuthCommands(m.uow, store, jwtService).RefreshToken(ctx, access)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deactivated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)

		refresh, err := jwtService.GenerateRefreshToken(userID, user.RoleAdmin)
		require.NoError(t, err)
		store.EXPECT().FindByID(ctx, userID).Return(&queries.AuthorizedUserView{ID: userID, Role: "admin", IsActive: false}, nil)

		_, err = commands.NewAuthCommands(m.uow, store, jwtService).RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestAuthCommands_CreateUser(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour)

	t.Run("creates a hashed account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)
		newID := uuid.New()

		m.expectWithin(1)
		m.users.EXPECT().Create(ctx, m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (uuid.UUID, error) {
				assert.Equal(t, "dev@mysterybox.test", u.Email().Value())
				assert.Equal(t, user.RoleDeveloper, u.Role())
				assert.NoError(t, password.ComparePassword(u.PasswordHash(), testPassword))
				return newID, nil
			})

		id, err := commands.NewAuthCommands(m.uow, store, jwtService).CreateUser(ctx, "dev@mysterybox.test", testPassword, "developer")
		require.NoError(t, err)
		assert.Equal(t, newID, id)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)

		m.expectWithin(1)
		m.users.EXPECT().Create(ctx, m.db, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", errors.New("unique"), infra.KindDuplicateKey))

		_, err := commands.NewAuthCommands(m.uow, store, jwtService).CreateUser(ctx, "dev@mysterybox.test", testPassword, "developer")
		assert.ErrorIs(t, err, commands.ErrUserAlreadyExists)
	})

	t.Run("weak password and unknown role are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)
		uc := commands.NewAuthCommands(m.uow, store, jwtService)

		_, err := uc.CreateUser(ctx, "dev@mysterybox.test", "short", "developer")
		assert.ErrorIs(t, err, commands.ErrInvalidUser)

		_, err = uc.CreateUser(ctx, "dev@mysterybox.test", testPassword, "superuser")
		assert.ErrorIs(t, err, commands.ErrInvalidUser)
	})
}
