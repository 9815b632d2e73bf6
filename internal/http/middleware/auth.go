package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ActorIDLocalKey holds the authenticated subject id.
	ActorIDLocalKey = "actor_id"
	// RoleLocalKey holds the authenticated subject role.
	RoleLocalKey = "actor_role"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

var errMissingSubject = errors.New("token has no subject")

// Claims is the access token payload. Subject is the actor id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies an HS256 bearer token and stores the actor id and role
// in locals. An empty issuer disables the issuer check.
func Authenticate(secret []byte, issuer string) fiber.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := &Claims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err == nil && claims.Subject == "" {
			err = errMissingSubject
		}
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		role := claims.Role
		if role == "" {
			role = RoleUser
		}
		c.Locals(ActorIDLocalKey, claims.Subject)
		c.Locals(RoleLocalKey, role)

		return c.Next()
	}
}

// RequireAdmin rejects authenticated actors whose role is not admin. It must
// run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Role(c) != RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin role required")
		}
		return c.Next()
	}
}

// ActorID returns the authenticated subject id, or "" outside Authenticate.
func ActorID(c *fiber.Ctx) string {
	id, _ := c.Locals(ActorIDLocalKey).(string)
	return id
}

// Role returns the authenticated subject role, or "" outside Authenticate.
func Role(c *fiber.Ctx) string {
	r, _ := c.Locals(RoleLocalKey).(string)
	return r
}
