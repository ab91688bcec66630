package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/manan6/intelli-resume/pkg/auth"
)

type stubAuth struct {
	signupErr error
	loginErr  error
}

func (s *stubAuth) Signup(ctx context.Context, email, password string) (auth.Result, error) {
	if s.signupErr != nil {
		return auth.Result{}, s.signupErr
	}
	return auth.Result{User: auth.User{ID: uuid.New(), Email: email}, Token: "tok"}, nil
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (auth.Result, error) {
	if s.loginErr != nil {
		return auth.Result{}, s.loginErr
	}
	return auth.Result{User: auth.User{ID: uuid.New(), Email: email}, Token: "tok"}, nil
}

func newAuthApp(uc auth.UseCase) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(uc)
	app.Post("/auth/signup", h.Signup)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestSignupCreated(t *testing.T) {
	resp := postJSON(t, newAuthApp(&stubAuth{}), "/auth/signup", `{"email":"a@b.c","password":"secret"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["token"] != "tok" || body["email"] != "a@b.c" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestSignupConflict(t *testing.T) {
	resp := postJSON(t, newAuthApp(&stubAuth{signupErr: auth.ErrUserAlreadyExists}),
		"/auth/signup", `{"email":"a@b.c","password":"secret"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestSignupMissingFields(t *testing.T) {
	resp := postJSON(t, newAuthApp(&stubAuth{}), "/auth/signup", `{"email":""}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	resp := postJSON(t, newAuthApp(&stubAuth{loginErr: auth.ErrInvalidCredentials}),
		"/auth/login", `{"email":"a@b.c","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginOK(t *testing.T) {
	resp := postJSON(t, newAuthApp(&stubAuth{}), "/auth/login", `{"email":"a@b.c","password":"secret"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["token"] != "tok" {
		t.Errorf("expected token in body, got %v", body)
	}
}
