package jwtmw

import "github.com/golang-jwt/jwt/v5"

// UserClaim is the identity embedded in every token.
type UserClaim struct {
	ID uint `json:"id"`
}

// Claims is the token payload: { "user": { "id": ... } } plus registered claims.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}
