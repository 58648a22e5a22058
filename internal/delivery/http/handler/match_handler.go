package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/candidates", h.ListCandidates)
	grp.Post("/:job_id/matches/refresh", h.RefreshMatches)
	grp.Get("/:job_id/matches/summary", h.MatchSummary)
}

func (h *MatchHandler) ListCandidates(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params, err := matchParamsFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid filter parameters", nil, err)
	}

	page, err := h.uc.FindCandidatesForJob(c.Context(), jobID, params)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateMatchListResponse(page))
}

func (h *MatchHandler) RefreshMatches(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	total, err := h.uc.RefreshJobMatches(c.Context(), jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"refreshed": total})
}

func (h *MatchHandler) MatchSummary(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	summary, err := h.uc.JobMatchSummary(c.Context(), jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	dist := make(map[string]int, len(summary.FitDistribution))
	for fit, n := range summary.FitDistribution {
		dist[string(fit)] = n
	}
	top := make([]dto.SkillFrequencyResponse, 0, len(summary.TopSkills))
	for _, s := range summary.TopSkills {
		top = append(top, dto.SkillFrequencyResponse{Name: s.Name, Count: s.Count})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchSummaryResponse{
		JobID:           summary.JobID,
		CandidateCount:  summary.CandidateCount,
		AverageScore:    summary.AverageScore,
		FitDistribution: dist,
		TopSkills:       top,
	})
}

func matchParamsFromQuery(c fiber.Ctx) (usecase.MatchParams, error) {
	params := usecase.MatchParams{
		MinScore:        parseQueryInt(c, "min_score", 0),
		ExperienceLevel: c.Query("experience_level"),
		Location:        c.Query("location"),
		RemoteOnly:      parseQueryBool(c, "remote"),
		Page:            parseQueryInt(c, "page", 1),
		Limit:           parseQueryInt(c, "limit", 20),
		Refresh:         parseQueryBool(c, "refresh"),
	}

	if raw := strings.TrimSpace(c.Query("skills")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				params.Skills = append(params.Skills, s)
			}
		}
	}

	var err error
	if params.AvailableFrom, err = parseQueryTime(c, "available_from"); err != nil {
		return usecase.MatchParams{}, err
	}
	if params.AvailableTo, err = parseQueryTime(c, "available_to"); err != nil {
		return usecase.MatchParams{}, err
	}

	return params, nil
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryBool(c fiber.Ctx, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

func parseQueryTime(c fiber.Ctx, key string) (*time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrNoCandidatesAvailable):
		return middleware.NewAppError(fiber.StatusNotFound, "No candidates available", nil, err)
	case errors.Is(err, usecase.ErrNoJobsAvailable):
		return middleware.NewAppError(fiber.StatusNotFound, "No jobs available", nil, err)
	case errors.Is(err, usecase.ErrInvalidFilter):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid filter parameters", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
