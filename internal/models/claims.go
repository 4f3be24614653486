package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the payload carried by the bearer token. Role decides which
// projection of affiliate revenue the caller is allowed to see.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims belong to an administrator.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
