package ds

import (
	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID   uint   `json:"user_id"`
	RoleID   uint   `json:"role_id"`
	RoleSlug string `json:"role_slug"`
}
