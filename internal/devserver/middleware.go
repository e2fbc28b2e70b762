package devserver

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const localsTokenKey = "apiToken"

// issueToken wraps a backing client token in a signed JWT. The bearer token
// handed to HTTP clients is the JWT; the subject claim carries the token the
// in-process client understands.
func (s *Server) issueToken(backingToken string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": backingToken,
		"iss": "vitalog-dev",
		"exp": now.Add(time.Hour * 24 * 7).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// resolveBearer validates a bearer JWT and returns the backing client token
// from its subject claim.
func (s *Server) resolveBearer(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}

// authRequired enforces a valid bearer token and stores the backing client
// token for handlers.
func (s *Server) authRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "authorization header required",
			})
		}
		backing, ok := s.resolveBearer(header)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "invalid or expired token",
			})
		}
		c.Locals(localsTokenKey, backing)
		return c.Next()
	}
}

// authOptional resolves a bearer token when present but lets anonymous
// requests through with an empty token.
func (s *Server) authOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if header := c.Get("Authorization"); header != "" {
			if backing, ok := s.resolveBearer(header); ok {
				c.Locals(localsTokenKey, backing)
			}
		}
		return c.Next()
	}
}
