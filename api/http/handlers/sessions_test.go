package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/manan6/intelli-resume/pkg/resume"
)

type fakeSessionRepo struct {
	createErr error
	created   []resume.Session
	stored    map[uuid.UUID]resume.Session

	lastListOwner uuid.UUID
}

func (f *fakeSessionRepo) Create(ctx context.Context, s resume.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessionRepo) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Session, error) {
	s, ok := f.stored[id]
	if !ok || s.OwnerID != ownerID {
		return resume.Session{}, resume.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Session, error) {
	f.lastListOwner = ownerID
	out := []resume.Session{}
	for _, s := range f.stored {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

// setUser simulates the auth middleware for handler tests.
func setUser(id string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", id)
		return c.Next()
	}
}

func newSessionsApp(repo resume.SessionRepository, userID string) *fiber.App {
	app := fiber.New()
	h := NewSessionsHandler(repo)
	g := app.Group("/resume/sessions")
	if userID != "" {
		g.Use(setUser(userID))
	}
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	return app
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestSessionsRequireAuthenticatedCaller(t *testing.T) {
	app := newSessionsApp(&fakeSessionRepo{}, "")

	if resp := getPath(t, app, "/resume/sessions/"); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("list without user: expected 401, got %d", resp.StatusCode)
	}
	if resp := getPath(t, app, "/resume/sessions/"+uuid.NewString()); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("get without user: expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionsListScopedToOwner(t *testing.T) {
	owner := uuid.New()
	repo := &fakeSessionRepo{stored: map[uuid.UUID]resume.Session{}}
	app := newSessionsApp(repo, owner.String())

	resp := getPath(t, app, "/resume/sessions/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if repo.lastListOwner != owner {
		t.Errorf("list must query the caller's id, got %s", repo.lastListOwner)
	}
}

func TestSessionsGetHidesOtherOwners(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	id := uuid.New()
	repo := &fakeSessionRepo{stored: map[uuid.UUID]resume.Session{
		id: {ID: id, OwnerID: other, Outcome: resume.OutcomeAI},
	}}
	app := newSessionsApp(repo, owner.String())

	if resp := getPath(t, app, "/resume/sessions/"+id.String()); resp.StatusCode != http.StatusNotFound {
		t.Errorf("foreign session: expected 404, got %d", resp.StatusCode)
	}
}

func TestSessionsGetOwn(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	repo := &fakeSessionRepo{stored: map[uuid.UUID]resume.Session{
		id: {ID: id, OwnerID: owner, Outcome: resume.OutcomeAI, Document: resume.ResumeDocument{FullName: "A"}},
	}}
	app := newSessionsApp(repo, owner.String())

	resp := getPath(t, app, "/resume/sessions/"+id.String())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["id"] != id.String() {
		t.Errorf("unexpected session body: %v", body)
	}
}

func TestSessionsGetInvalidID(t *testing.T) {
	app := newSessionsApp(&fakeSessionRepo{}, uuid.NewString())
	if resp := getPath(t, app, "/resume/sessions/not-a-uuid"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
