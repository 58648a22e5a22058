package handler

import (
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillProfileHandler struct {
	uc usecase.SkillProfileUsecase
}

type candidateSkillItem struct {
	SkillID     uuid.UUID `json:"skill_id"`
	Proficiency *int      `json:"proficiency,omitempty"`
}

type jobSkillItem struct {
	SkillID     uuid.UUID `json:"skill_id"`
	Required    bool      `json:"required"`
	Proficiency *int      `json:"proficiency,omitempty"`
}

type replaceCandidateSkillsRequest struct {
	Skills []candidateSkillItem `json:"skills"`
}

type replaceJobSkillsRequest struct {
	Skills []jobSkillItem `json:"skills"`
}

func NewSkillProfileHandler(uc usecase.SkillProfileUsecase) *SkillProfileHandler {
	return &SkillProfileHandler{uc: uc}
}

func (h *SkillProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Put("/candidates/:candidate_id/skills", h.ReplaceCandidateSkills)
	r.Put("/jobs/:job_id/skills", h.ReplaceJobSkills)
}

func (h *SkillProfileHandler) ReplaceCandidateSkills(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req replaceCandidateSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]repository.SkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		if s.Proficiency != nil && (*s.Proficiency < 0 || *s.Proficiency > 100) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Proficiency must be between 0 and 100", nil, nil)
		}
		skills = append(skills, repository.SkillInput{SkillID: s.SkillID, Proficiency: s.Proficiency})
	}

	if err := h.uc.ReplaceCandidateSkills(c.Context(), candidateID, skills); err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SkillProfileHandler) ReplaceJobSkills(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req replaceJobSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]repository.JobSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		if s.Proficiency != nil && (*s.Proficiency < 0 || *s.Proficiency > 100) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Proficiency must be between 0 and 100", nil, nil)
		}
		skills = append(skills, repository.JobSkillInput{SkillID: s.SkillID, Required: s.Required, Proficiency: s.Proficiency})
	}

	if err := h.uc.ReplaceJobSkills(c.Context(), jobID, skills); err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
