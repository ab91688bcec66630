package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/manan6/intelli-resume/api/http/presenter"
	"github.com/manan6/intelli-resume/pkg/resume"
)

type SessionsHandler struct {
	repo resume.SessionRepository
}

func NewSessionsHandler(repo resume.SessionRepository) *SessionsHandler {
	return &SessionsHandler{repo: repo}
}

// List returns the caller's stored resume sessions, newest first.
// @Summary List stored resume sessions
// @Tags    sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Session
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/sessions [get]
func (h *SessionsHandler) List(c *fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.repo.ListByOwner(c.Context(), ownerID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list sessions")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one stored resume session by id.
// @Summary Get a stored resume session
// @Tags    sessions
// @Produce json
// @Security BearerAuth
// @Param   id path string true "session id"
// @Success 200 {object} resume.Session
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/sessions/{id} [get]
func (h *SessionsHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid session id")
	}
	session, err := h.repo.GetForOwner(c.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, resume.ErrSessionNotFound) {
			return presenter.Error(c, http.StatusNotFound, "session not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load session")
	}
	return presenter.JSON(c, http.StatusOK, session)
}

func callerID(c *fiber.Ctx) (uuid.UUID, bool) {
	idStr, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
