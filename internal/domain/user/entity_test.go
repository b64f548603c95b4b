//go:build unit

package user_test

import (
	"strings"
	"testing"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("dev@mysterybox.test")
		role, _ := user.NewRole("developer")
		expected := user.NewUser(email, "hashed_password", role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("メールアドレスは小文字に正規化", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithEmail("  Ops@MysteryBox.Test ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "ops@mysterybox.test", u.Email().Value())
	})

	t.Run("パスワード長", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("a", 7))
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
		_, err = user.NewPassword(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, user.ErrPasswordTooLong)
		_, err = user.NewPassword(strings.Repeat("a", 72))
		assert.NoError(t, err)
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "developer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("developer") },
			},
			{
				name:   "operator ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		have, min user.Role
		want      bool
	}{
		{user.RoleOperator, user.RoleOperator, true},
		{user.RoleOperator, user.RoleDeveloper, false},
		{user.RoleDeveloper, user.RoleOperator, true},
		{user.RoleDeveloper, user.RoleAdmin, false},
		{user.RoleAdmin, user.RoleDeveloper, true},
		{user.Role("ghost"), user.RoleOperator, false},
		{user.RoleAdmin, user.Role("ghost"), false},
	}
	for _, tt := range tests {
		t.Run(tt.have.String()+">="+tt.min.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.have.AtLeast(tt.min))
		})
	}
}

func TestPermissions(t *testing.T) {
	operator, err := builder.NewUserBuilder().WithRole("operator").BuildDomain()
	require.NoError(t, err)
	assert.True(t, operator.CanManageFlashOffers())
	assert.False(t, operator.CanConfigurePromotions())

	developer, err := builder.NewUserBuilder().WithRole("developer").BuildDomain()
	require.NoError(t, err)
	assert.True(t, developer.CanManageFlashOffers())
	assert.True(t, developer.CanConfigurePromotions())

	inactive, err := builder.NewUserBuilder().WithRole("admin").AsInactive().BuildDomain()
	require.NoError(t, err)
	assert.False(t, inactive.IsActive())
	assert.False(t, inactive.CanManageFlashOffers())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
