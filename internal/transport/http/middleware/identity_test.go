package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"release-control/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

func signToken(t *testing.T, claims IdentityClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func identityApp() (*fiber.App, *entities.Actor) {
	var seen entities.Actor
	app := fiber.New()
	app.Get("/", Identity(testSecret), func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		seen = actor
		return c.SendStatus(http.StatusOK)
	})
	return app, &seen
}

func TestIdentityResolvesActor(t *testing.T) {
	app, seen := identityApp()

	token := signToken(t, IdentityClaims{
		DisplayName: "Ana",
		Team:        "platform",
		Roles:       []string{"reviewer1", "developer"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-ana",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "u-ana", seen.ID)
	require.Equal(t, "Ana", seen.DisplayName)
	require.Equal(t, []entities.Role{entities.RoleReviewer1, entities.RoleDeveloper}, seen.Roles)
}

func TestIdentityRejectsMissingToken(t *testing.T) {
	app, _ := identityApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityRejectsExpiredToken(t *testing.T) {
	app, _ := identityApp()

	token := signToken(t, IdentityClaims{
		DisplayName: "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-ana",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityRejectsUnexpectedSigningMethod(t *testing.T) {
	app, _ := identityApp()

	// Correct secret, but not the pinned HS256 algorithm.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, IdentityClaims{
		DisplayName: "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-ana",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityRejectsForeignSignature(t *testing.T) {
	app, _ := identityApp()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		DisplayName: "Mallory",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
