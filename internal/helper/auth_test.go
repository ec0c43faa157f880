package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// the Authorization header form is accepted too
	claims, err = auth.VerifyToken("Bearer " + token)
	if err != nil {
		t.Fatalf("VerifyToken with Bearer prefix: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestGenerateTokenRequiresInputs(t *testing.T) {
	auth := SetupAuth("test-secret")

	if _, err := auth.GenerateToken(0, "user@example.com"); err == nil {
		t.Fatalf("expected error for missing user id")
	}
	if _, err := auth.GenerateToken(42, ""); err == nil {
		t.Fatalf("expected error for missing email")
	}
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := auth.VerifyToken(""); err == nil {
		t.Fatalf("empty token should fail")
	}
	if _, err := auth.VerifyToken("Bearer "); err == nil {
		t.Fatalf("bearer with no token should fail")
	}
	if _, err := auth.VerifyToken("not-a-jwt"); err == nil {
		t.Fatalf("garbage token should fail")
	}

	other := SetupAuth("different-secret")
	if _, err := other.VerifyToken(token); err == nil {
		t.Fatalf("token signed with another secret should fail")
	}
}

func TestGetCurrentUser(t *testing.T) {
	auth := SetupAuth("test-secret")
	app := fiber.New()

	app.Get("/with-user", func(c *fiber.Ctx) error {
		c.Locals("user", dto.AuthResponse{UserID: 7, Email: "user@example.com"})
		claims, err := auth.GetCurrentUser(c)
		if err != nil {
			t.Fatalf("GetCurrentUser: %v", err)
		}
		if claims.UserID != 7 || claims.Email != "user@example.com" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/without-user", func(c *fiber.Ctx) error {
		if _, err := auth.GetCurrentUser(c); err == nil {
			t.Fatalf("expected error without auth context")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/with-user", "/without-user"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %s: status %d", path, resp.StatusCode)
		}
	}
}

func TestVerifyPassword(t *testing.T) {
	auth := SetupAuth("test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if err := auth.VerifyPassword("secret123", string(hashed)); err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if err := auth.VerifyPassword("wrong", string(hashed)); err == nil {
		t.Fatalf("wrong password should fail")
	}
}
