package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys filled in by JWTAuth
const (
	ContextCallerKey = "userID"
	ContextRoleKey   = "userRole"
)

// Roles a write-guard token may carry
var knownRoles = map[string]bool{"admin": true, "user": true}

// authFailure is rendered as an RFC 6750 error body
type authFailure struct {
	code   string
	reason string
}

// callerClaims is the token payload the API understands
type callerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth admits requests carrying an HS256/384/512 bearer token signed with secret.
// The token needs exp, sub and a known role; nbf and iat are honoured when present.
func JWTAuth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) { return secret, nil }

	return func(c *gin.Context) {
		raw, failure := bearerToken(c.GetHeader("Authorization"))
		if failure != nil {
			abortUnauthorized(c, failure)
			return
		}

		claims := &callerClaims{}
		if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
			abortUnauthorized(c, &authFailure{"invalid_token", describeTokenError(err)})
			return
		}
		if failure := checkCaller(claims); failure != nil {
			abortUnauthorized(c, failure)
			return
		}

		c.Set(ContextCallerKey, claims.Subject)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(header string) (string, *authFailure) {
	if header == "" {
		return "", &authFailure{"authorization_required", "this route needs an Authorization header"}
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", &authFailure{"invalid_request", "expected 'Authorization: Bearer <token>'"}
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", &authFailure{"invalid_token", "bearer token is blank"}
	}
	return token, nil
}

func checkCaller(claims *callerClaims) *authFailure {
	if claims.Subject == "" {
		return &authFailure{"invalid_token", "sub claim is required"}
	}
	if claims.Role == "" {
		return &authFailure{"invalid_token", "role claim is required"}
	}
	if !knownRoles[claims.Role] {
		return &authFailure{"invalid_token", "role " + claims.Role + " is not recognised"}
	}
	return nil
}

// describeTokenError keeps the client message short; jwt errors chain several causes
func describeTokenError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token not valid yet"
	case errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return "token issued in the future"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "exp claim is required"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "signature check failed"
	default:
		return "token could not be parsed"
	}
}

func abortUnauthorized(c *gin.Context, failure *authFailure) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":             failure.code,
		"error_description": failure.reason,
	})
}
