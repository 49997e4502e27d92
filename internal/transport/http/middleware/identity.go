// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"net/http"
	"strings"

	"release-control/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

// IdentityClaims is the token shape the identity provider issues. The engine
// never authenticates credentials; it only consumes these claims.
type IdentityClaims struct {
	DisplayName string   `json:"name"`
	Team        string   `json:"team"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// Identity validates the bearer token and stores the resolved actor in
// request locals.
func Identity(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "bearer token required"})
		}

		token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(_ *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		claims, ok := token.Claims.(*IdentityClaims)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token claims"})
		}

		roles := make([]entities.Role, 0, len(claims.Roles))
		for _, r := range claims.Roles {
			roles = append(roles, entities.Role(r))
		}
		c.Locals(actorKey, entities.Actor{
			ID:          claims.Subject,
			DisplayName: claims.DisplayName,
			Team:        claims.Team,
			Roles:       roles,
		})
		return c.Next()
	}
}

// ActorFromCtx returns the actor stored by the Identity middleware.
func ActorFromCtx(c *fiber.Ctx) (entities.Actor, bool) {
	actor, ok := c.Locals(actorKey).(entities.Actor)
	return actor, ok
}
