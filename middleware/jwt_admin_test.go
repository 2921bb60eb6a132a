package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newGuardedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Post("/admin", JWTAdminMiddleware(secret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})
	return app
}

func TestJWTAdminMiddleware(t *testing.T) {
	const secret = "test-secret"
	valid, err := IssueAdminToken(secret, "ops", time.Hour)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}
	expired, err := IssueAdminToken(secret, "ops", -time.Hour)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}
	foreign, err := IssueAdminToken("other-secret", "ops", time.Hour)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", fiber.StatusUnauthorized},
		{"expired", "Bearer " + expired, fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, fiber.StatusUnauthorized},
		{"valid", "Bearer " + valid, fiber.StatusOK},
	}
	app := newGuardedApp(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestJWTAdminMiddlewareDisabledWithoutSecret(t *testing.T) {
	app := fiber.New()
	app.Post("/admin", JWTAdminMiddleware(""), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/admin", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

func TestIssueAdminTokenRequiresSecret(t *testing.T) {
	if _, err := IssueAdminToken("", "ops", time.Hour); err == nil {
		t.Error("expected error without secret")
	}
}
