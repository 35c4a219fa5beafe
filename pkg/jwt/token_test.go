package jwtPkg

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	accessToken, expiry, err := Sign(map[string]interface{}{
		"sub":  "ops@bluewud.com",
		"role": "admin",
	}, time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if expiry <= time.Now().Unix() {
		t.Errorf("expiry = %d, want a future timestamp", expiry)
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		token, err := VerifyTokenHeader(c, "JWT_ACCESS_TOKEN_SECRET")
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", res.StatusCode, fiber.StatusOK)
	}
}

func TestVerifyTokenHeaderRejectsBadInput(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abcdef"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := VerifyTokenHeader(c, "JWT_ACCESS_TOKEN_SECRET"); err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			res, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if res.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, want %d", res.StatusCode, fiber.StatusUnauthorized)
			}
		})
	}
}
