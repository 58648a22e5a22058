package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func newTestJobRecommendationUsecase(jobs *mockJobRepo, candidates *mockCandidateRepo, cache MatchCache) *JobRecommendation {
	engine := matching.NewEngine(nil, matching.Config{})
	return NewJobRecommendationUsecase(jobs, candidates, engine, cache, nil)
}

func TestJobRecommendationUsecase_FindJobsForCandidate_NilCandidateID(t *testing.T) {
	uc := newTestJobRecommendationUsecase(&mockJobRepo{}, &mockCandidateRepo{}, nil)
	_, err := uc.FindJobsForCandidate(context.Background(), uuid.Nil, MatchParams{})
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestJobRecommendationUsecase_FindJobsForCandidate_CandidateNotFound(t *testing.T) {
	uc := newTestJobRecommendationUsecase(
		&mockJobRepo{jobs: []matching.JobRequirement{testJob()}},
		&mockCandidateRepo{findErr: repository.ErrCandidateNotFound},
		nil,
	)
	_, err := uc.FindJobsForCandidate(context.Background(), uuid.New(), MatchParams{})
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestJobRecommendationUsecase_FindJobsForCandidate_NoJobs(t *testing.T) {
	candidate := testPool()[0]
	uc := newTestJobRecommendationUsecase(&mockJobRepo{}, &mockCandidateRepo{candidate: candidate}, nil)
	_, err := uc.FindJobsForCandidate(context.Background(), candidate.ID, MatchParams{})
	if !errors.Is(err, ErrNoJobsAvailable) {
		t.Fatalf("expected ErrNoJobsAvailable, got %v", err)
	}
}

func TestJobRecommendationUsecase_FindJobsForCandidate_RanksAndCaches(t *testing.T) {
	candidate := testPool()[0]
	match := testJob()
	mismatch := matching.JobRequirement{
		ID:             uuid.New(),
		Title:          "Designer",
		RequiredSkills: []matching.Skill{{ID: uuid.New(), Name: "Figma"}},
	}
	cache := newMemCache()

	uc := newTestJobRecommendationUsecase(
		&mockJobRepo{jobs: []matching.JobRequirement{mismatch, match}},
		&mockCandidateRepo{candidate: candidate},
		cache,
	)

	page, err := uc.FindJobsForCandidate(context.Background(), candidate.ID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Items[0].Job.ID != match.ID {
		t.Fatalf("expected matching job ranked first, got %q", page.Items[0].Job.Title)
	}
	if page.Items[0].Result.Score <= page.Items[1].Result.Score {
		t.Fatalf("expected descending scores, got %d then %d", page.Items[0].Result.Score, page.Items[1].Result.Score)
	}
	if len(cache.sets) != 1 {
		t.Fatalf("expected one cache write, got %d", len(cache.sets))
	}
}

func TestJobRecommendationUsecase_FindJobsForCandidate_CacheHit(t *testing.T) {
	candidateID := uuid.New()
	params := MatchParams{Page: 1, Limit: 5}
	cache := newMemCache()

	cached := matching.JobPage{
		Items:      []matching.JobMatch{{Job: matching.JobRequirement{Title: "Cached"}}},
		Pagination: matching.Pagination{Page: 1, Limit: 5, Total: 1, TotalPages: 1},
	}
	if err := cache.SetJSON(context.Background(), CandidateMatchesCacheKey(candidateID, params), cached, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	uc := newTestJobRecommendationUsecase(
		&mockJobRepo{},
		&mockCandidateRepo{findErr: errors.New("db down")},
		cache,
	)

	page, err := uc.FindJobsForCandidate(context.Background(), candidateID, params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Job.Title != "Cached" {
		t.Fatalf("expected cached page, got %+v", page)
	}
}
