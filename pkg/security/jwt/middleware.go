package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT
// (HS256). On success it sets the user id (subject) into c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := verifyRequest(c, secret, expectedIssuer)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or missing token"})
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware sets c.Locals("userId") when a valid token is
// presented and continues either way. Used on public routes that attach the
// owner when one is known, e.g. resume generation.
func NewOptionalAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := verifyRequest(c, secret, expectedIssuer); ok {
			c.Locals("userId", userID)
		}
		return c.Next()
	}
}

func verifyRequest(c *fiber.Ctx, secret, expectedIssuer string) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	// Support both "Bearer <token>" and "<token>" (no prefix).
	tokenStr := strings.TrimSpace(authHeader)
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	if tokenStr == "" {
		return "", false
	}
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", false
	}
	if expectedIssuer != "" && claims.Issuer != expectedIssuer {
		return "", false
	}
	return claims.Subject, true
}
