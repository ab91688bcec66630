package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/manan6/intelli-resume/api/http/presenter"
	"github.com/manan6/intelli-resume/pkg/resume"
)

type ResumeHandler struct {
	svc      resume.GeneratorService
	sessions resume.SessionRepository // nil when no database is configured
	maxBytes int64
}

func NewResumeHandler(svc resume.GeneratorService, sessions resume.SessionRepository) *ResumeHandler {
	return &ResumeHandler{svc: svc, sessions: sessions, maxBytes: 15 << 20} // 15MB
}

// Generate builds a structured resume from profile details and a free-form
// background narrative. The AI service is asked first; on any failure a
// deterministic fallback document is returned instead, so the endpoint always
// succeeds for valid input.
// @Summary Generate a resume from profile data
// @Description Delegates content generation to the completion service, reconciles the reply against caller-supplied fields, and falls back to rule-based synthesis when the service is unavailable or returns unusable output.
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body resume.ProfileInput true "profile payload"
// @Success 200 {object} map[string]any "resumeData plus outcome (ai_generated or fallback_used)"
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/generate [post]
func (h *ResumeHandler) Generate(c *fiber.Ctx) error {
	var in resume.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result := h.svc.Generate(c.Context(), in)

	var sessionID string
	if h.sessions != nil {
		ownerIDStr, _ := c.Locals("userId").(string)
		ownerID, _ := uuid.Parse(ownerIDStr)
		session := resume.Session{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			Outcome:  result.Outcome,
			Model:    result.Model,
			Document: result.Document,
		}
		// Best-effort: a storage failure must not fail generation.
		if err := h.sessions.Create(c.Context(), session); err == nil {
			sessionID = session.ID.String()
		}
	}

	message := "Resume generated successfully"
	if result.Outcome == resume.OutcomeFallback {
		message = "Used fallback resume"
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":    true,
		"resumeData": result.Document,
		"outcome":    result.Outcome,
		"model":      result.Model,
		"message":    message,
		"detail":     result.Detail,
		"sessionId":  sessionID,
	})
}

type skillRecommendationsRequest struct {
	Field           string   `json:"field"`
	ExperienceLevel string   `json:"experienceLevel"`
	ExistingSkills  []string `json:"existingSkills"`
}

// RecommendSkills suggests skills for a field and experience level.
// @Summary Skill recommendations
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body skillRecommendationsRequest true "recommendation query"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /skill-recommendations [post]
func (h *ResumeHandler) RecommendSkills(c *fiber.Ctx) error {
	var req skillRecommendationsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	skills := h.svc.Recommend(req.Field, req.ExperienceLevel, req.ExistingSkills)
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"recommendedSkills": skills,
		"totalAvailable":    resume.TotalSkills(),
	})
}

// Import extracts plain text from an uploaded resume file (PDF/DOCX) so the
// client can pre-fill the background narrative, and returns derived hints.
// @Summary Import background text from an existing resume
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (PDF or DOCX)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/import [post]
func (h *ResumeHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ImportSourceText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if text == "" {
		return presenter.Error(c, http.StatusBadRequest, "empty resume content")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"prompt":         text,
		"contentType":    resume.Classify(text),
		"suggestedTitle": resume.InferTitle(text, "", ""),
		"detectedSkills": resume.DetectSkills(text),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
