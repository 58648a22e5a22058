package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type MatchParams struct {
	MinScore        int
	Skills          []string
	ExperienceLevel string
	Location        string
	RemoteOnly      bool
	AvailableFrom   *time.Time
	AvailableTo     *time.Time
	Page            int
	Limit           int
	Refresh         bool
}

func (p MatchParams) rankOptions() matching.RankOptions {
	return matching.RankOptions{
		Filter: matching.Filter{
			MinScore:        p.MinScore,
			Skills:          p.Skills,
			ExperienceLevel: p.ExperienceLevel,
			Location:        p.Location,
			RemoteOnly:      p.RemoteOnly,
			AvailableFrom:   p.AvailableFrom,
			AvailableTo:     p.AvailableTo,
		},
		Page:  p.Page,
		Limit: p.Limit,
	}
}

type MatchSummary struct {
	JobID           uuid.UUID
	CandidateCount  int
	AverageScore    float64
	FitDistribution map[matching.Fit]int
	TopSkills       []SkillFrequency
}

type SkillFrequency struct {
	Name  string
	Count int
}

type MatchNotifier interface {
	NotifyMatchesRefreshed(jobID uuid.UUID, total int)
}

type MatchUsecase interface {
	FindCandidatesForJob(ctx context.Context, jobID uuid.UUID, params MatchParams) (matching.CandidatePage, error)
	RefreshJobMatches(ctx context.Context, jobID uuid.UUID) (int, error)
	JobMatchSummary(ctx context.Context, jobID uuid.UUID) (MatchSummary, error)
}

type Match struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	matches    repository.MatchRepository
	engine     *matching.Engine
	cache      MatchCache
	notifier   MatchNotifier
	logger     *log.Logger
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	matches repository.MatchRepository,
	engine *matching.Engine,
	cache MatchCache,
	notifier MatchNotifier,
	logger *log.Logger,
) *Match {
	return &Match{
		jobs:       jobs,
		candidates: candidates,
		matches:    matches,
		engine:     engine,
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
	}
}

func (u *Match) FindCandidatesForJob(ctx context.Context, jobID uuid.UUID, params MatchParams) (matching.CandidatePage, error) {
	if jobID == uuid.Nil {
		return matching.CandidatePage{}, ErrJobNotFound
	}
	opts := params.rankOptions()
	if err := opts.Filter.Validate(); err != nil {
		return matching.CandidatePage{}, err
	}

	cacheKey := JobMatchesCacheKey(jobID, params)
	if !params.Refresh && u.cache != nil {
		var cached matching.CandidatePage
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Match] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	job, pool, err := u.jobAndPool(ctx, jobID)
	if err != nil {
		return matching.CandidatePage{}, err
	}

	page, err := u.engine.RankCandidates(job, pool, opts)
	if err != nil {
		return matching.CandidatePage{}, err
	}

	// Write-through after recomputation, including forced refreshes.
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, page, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Cache write failed: %s err=%v", cacheKey, err)
		}
	}

	return page, nil
}

func (u *Match) RefreshJobMatches(ctx context.Context, jobID uuid.UUID) (int, error) {
	if jobID == uuid.Nil {
		return 0, ErrJobNotFound
	}

	if u.cache != nil {
		lockKey := JobMatchesLockKey(jobID)
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && !ok {
			if u.logger != nil {
				u.logger.Printf("[Match] Refresh already in progress: %s", lockKey)
			}
			return 0, nil
		}
		defer func() { _ = u.cache.Delete(ctx, lockKey) }()
	}

	job, pool, err := u.jobAndPool(ctx, jobID)
	if err != nil {
		return 0, err
	}

	page, err := u.engine.RankCandidates(job, pool, matching.RankOptions{Limit: len(pool)})
	if err != nil {
		return 0, err
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "matches:job:"+jobID.String()+":*"); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Cache invalidation failed: job=%s err=%v", jobID, err)
		}
	}

	// Persisting is best effort; a failed upsert must not fail the refresh.
	if u.matches != nil {
		for _, item := range page.Items {
			err := u.matches.Upsert(ctx, repository.MatchUpsert{
				JobID:       jobID,
				CandidateID: item.Candidate.ID,
				Score:       item.Result.Score,
				Fit:         item.Result.OverallFit,
			})
			if err != nil && u.logger != nil {
				u.logger.Printf("[Match] Store failed: job=%s candidate=%s err=%v", jobID, item.Candidate.ID, err)
			}
		}
	}

	if u.notifier != nil {
		u.notifier.NotifyMatchesRefreshed(jobID, page.Pagination.Total)
	}

	return page.Pagination.Total, nil
}

func (u *Match) JobMatchSummary(ctx context.Context, jobID uuid.UUID) (MatchSummary, error) {
	if jobID == uuid.Nil {
		return MatchSummary{}, ErrJobNotFound
	}

	job, pool, err := u.jobAndPool(ctx, jobID)
	if err != nil {
		return MatchSummary{}, err
	}

	page, err := u.engine.RankCandidates(job, pool, matching.RankOptions{Limit: len(pool)})
	if err != nil {
		return MatchSummary{}, err
	}

	return summarize(jobID, page.Items), nil
}

func (u *Match) jobAndPool(ctx context.Context, jobID uuid.UUID) (matching.JobRequirement, []matching.Candidate, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.JobRequirement{}, nil, ErrJobNotFound
		}
		return matching.JobRequirement{}, nil, ErrInternal
	}

	pool, err := u.candidates.ListCandidates(ctx)
	if err != nil {
		return matching.JobRequirement{}, nil, ErrInternal
	}
	if len(pool) == 0 {
		return matching.JobRequirement{}, nil, ErrNoCandidatesAvailable
	}

	return job, pool, nil
}

// summarize is a plain reduction over ranked results: average score, fit
// histogram, and the most frequently matched skills.
func summarize(jobID uuid.UUID, items []matching.CandidateMatch) MatchSummary {
	dist := map[matching.Fit]int{
		matching.FitExcellent: 0,
		matching.FitGood:      0,
		matching.FitFair:      0,
		matching.FitPoor:      0,
	}

	sum := 0
	counts := make(map[string]int)
	for _, it := range items {
		sum += it.Result.Score
		dist[it.Result.OverallFit]++
		for _, s := range it.Result.MatchingSkills {
			name := strings.ToLower(strings.TrimSpace(s.Name))
			if name == "" {
				continue
			}
			counts[name]++
		}
	}

	avg := 0.0
	if len(items) > 0 {
		avg = float64(sum) / float64(len(items))
	}

	top := make([]SkillFrequency, 0, len(counts))
	for name, c := range counts {
		top = append(top, SkillFrequency{Name: name, Count: c})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > 5 {
		top = top[:5]
	}

	return MatchSummary{
		JobID:           jobID,
		CandidateCount:  len(items),
		AverageScore:    avg,
		FitDistribution: dist,
		TopSkills:       top,
	}
}
