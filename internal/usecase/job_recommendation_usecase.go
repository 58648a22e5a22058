package usecase

import (
	"context"
	"errors"
	"log"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type JobRecommendationUsecase interface {
	FindJobsForCandidate(ctx context.Context, candidateID uuid.UUID, params MatchParams) (matching.JobPage, error)
}

type JobRecommendation struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	engine     *matching.Engine
	cache      MatchCache
	logger     *log.Logger
}

func NewJobRecommendationUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	engine *matching.Engine,
	cache MatchCache,
	logger *log.Logger,
) *JobRecommendation {
	return &JobRecommendation{
		jobs:       jobs,
		candidates: candidates,
		engine:     engine,
		cache:      cache,
		logger:     logger,
	}
}

func (u *JobRecommendation) FindJobsForCandidate(ctx context.Context, candidateID uuid.UUID, params MatchParams) (matching.JobPage, error) {
	if candidateID == uuid.Nil {
		return matching.JobPage{}, ErrCandidateNotFound
	}
	opts := params.rankOptions()
	if err := opts.Filter.Validate(); err != nil {
		return matching.JobPage{}, err
	}

	cacheKey := CandidateMatchesCacheKey(candidateID, params)
	if !params.Refresh && u.cache != nil {
		var cached matching.JobPage
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Match] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	candidate, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return matching.JobPage{}, ErrCandidateNotFound
		}
		return matching.JobPage{}, ErrInternal
	}

	pool, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return matching.JobPage{}, ErrInternal
	}
	if len(pool) == 0 {
		return matching.JobPage{}, ErrNoJobsAvailable
	}

	page, err := u.engine.RankJobs(candidate, pool, opts)
	if err != nil {
		return matching.JobPage{}, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, page, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Cache write failed: %s err=%v", cacheKey, err)
		}
	}

	return page, nil
}
