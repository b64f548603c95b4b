//go:build unit || e2e

package builder

import (
	reqdto "mysterybox-storefront/internal/handler/dto/request"
)

// AuthBuilder builds login bodies. The default credentials match the password
// dbtest.CreateTestUser hashes.
type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{Email: "operator@mysterybox.test", Password: "password123"}
}

func (a *AuthBuilder) WithCredentials(email, password string) *AuthBuilder {
	a.Email, a.Password = email, password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}
