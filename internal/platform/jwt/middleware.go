package jwtmw

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"devconnector_backend/internal/api"
)

const (
	// ContextUserID is the gin context key holding the verified user id (uint).
	ContextUserID = "userID"

	// HeaderAuthToken is the header the frontend sends the token in.
	HeaderAuthToken = "x-auth-token"
)

var (
	// ErrMissingToken is returned when the request carries no token.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken is returned when the token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier checks tokens signed with a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for tokens signed with secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses tokenStr and returns the user id it was issued for.
func (v *Verifier) Verify(tokenStr string) (uint, error) {
	if len(v.secret) == 0 {
		return 0, ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		// HMAC のみ許可（none や RS 系は拒否）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.User.ID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.User.ID, nil
}

// AuthRequired returns a Gin middleware function that validates the token
// and restricts access to authenticated users only.
func AuthRequired(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Msg: "No token, authorization denied"})
			return
		}

		userID, err := v.Verify(tokenStr)
		if err != nil {
			slog.Warn("token rejected", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Msg: "Token is not valid"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserIDFrom returns the user id stored by AuthRequired.
func UserIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// tokenFromRequest reads x-auth-token first, then an Authorization bearer token.
func tokenFromRequest(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(HeaderAuthToken)); t != "" {
		return t
	}
	auth := c.GetHeader("Authorization")
	if t, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(t)
	}
	return ""
}

// MustUserID returns the verified user id, or aborts with 401 when the route
// was mounted without AuthRequired.
func MustUserID(c *gin.Context) (uint, bool) {
	id, ok := UserIDFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Msg: "No token, authorization denied"})
	}
	return id, ok
}
