package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	job     matching.JobRequirement
	jobs    []matching.JobRequirement
	findErr error
	listErr error
	exists  bool

	replaced [][]repository.JobSkillInput
}

func (m *mockJobRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) { return m.exists, nil }
func (m *mockJobRepo) FindByID(context.Context, uuid.UUID) (matching.JobRequirement, error) {
	if m.findErr != nil {
		return matching.JobRequirement{}, m.findErr
	}
	return m.job, nil
}
func (m *mockJobRepo) ListJobs(context.Context) ([]matching.JobRequirement, error) {
	return m.jobs, m.listErr
}
func (m *mockJobRepo) ReplaceSkills(_ context.Context, _ uuid.UUID, skills []repository.JobSkillInput) error {
	m.replaced = append(m.replaced, skills)
	return nil
}

type mockCandidateRepo struct {
	candidate matching.Candidate
	pool      []matching.Candidate
	findErr   error
	listErr   error
	exists    bool

	replaced [][]repository.SkillInput
}

func (m *mockCandidateRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.exists, nil
}
func (m *mockCandidateRepo) FindByID(context.Context, uuid.UUID) (matching.Candidate, error) {
	if m.findErr != nil {
		return matching.Candidate{}, m.findErr
	}
	return m.candidate, nil
}
func (m *mockCandidateRepo) ListCandidates(context.Context) ([]matching.Candidate, error) {
	return m.pool, m.listErr
}
func (m *mockCandidateRepo) ReplaceSkills(_ context.Context, _ uuid.UUID, skills []repository.SkillInput) error {
	m.replaced = append(m.replaced, skills)
	return nil
}

type mockMatchRepo struct {
	upserts []repository.MatchUpsert
	err     error
}

func (m *mockMatchRepo) Upsert(_ context.Context, u repository.MatchUpsert) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, u)
	return nil
}

// memCache is an in-memory MatchCache for exercising the caching paths.
type memCache struct {
	data            map[string][]byte
	locked          bool
	deletedPatterns []string
	sets            []string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets = append(c.sets, key)
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deletedPatterns = append(c.deletedPatterns, pattern)
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	if c.locked {
		return false, nil
	}
	c.locked = true
	c.data[key] = []byte("1")
	return true, nil
}

type mockNotifier struct {
	jobID uuid.UUID
	total int
	calls int
}

func (m *mockNotifier) NotifyMatchesRefreshed(jobID uuid.UUID, total int) {
	m.jobID = jobID
	m.total = total
	m.calls++
}

func testJob() matching.JobRequirement {
	return matching.JobRequirement{
		ID:             uuid.New(),
		Title:          "Backend Engineer",
		RequiredSkills: []matching.Skill{{ID: uuid.New(), Name: "Go"}},
	}
}

func testPool() []matching.Candidate {
	return []matching.Candidate{
		{
			ID:     uuid.New(),
			Name:   "Ada",
			Skills: []matching.Skill{{ID: uuid.New(), Name: "Go"}, {ID: uuid.New(), Name: "PostgreSQL"}},
		},
		{
			ID:     uuid.New(),
			Name:   "Ben",
			Skills: []matching.Skill{{ID: uuid.New(), Name: "Photoshop"}},
		},
	}
}

func newTestMatchUsecase(jobs *mockJobRepo, candidates *mockCandidateRepo, matches *mockMatchRepo, cache MatchCache, notifier MatchNotifier) *Match {
	engine := matching.NewEngine(nil, matching.Config{})
	return NewMatchUsecase(jobs, candidates, matches, engine, cache, notifier, nil)
}

func TestMatchUsecase_FindCandidatesForJob_NilJobID(t *testing.T) {
	uc := newTestMatchUsecase(&mockJobRepo{}, &mockCandidateRepo{}, nil, nil, nil)
	_, err := uc.FindCandidatesForJob(context.Background(), uuid.Nil, MatchParams{})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMatchUsecase_FindCandidatesForJob_JobNotFound(t *testing.T) {
	uc := newTestMatchUsecase(
		&mockJobRepo{findErr: repository.ErrJobNotFound},
		&mockCandidateRepo{pool: testPool()},
		nil, nil, nil,
	)
	_, err := uc.FindCandidatesForJob(context.Background(), uuid.New(), MatchParams{})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMatchUsecase_FindCandidatesForJob_EmptyPool(t *testing.T) {
	uc := newTestMatchUsecase(&mockJobRepo{job: testJob()}, &mockCandidateRepo{}, nil, nil, nil)
	_, err := uc.FindCandidatesForJob(context.Background(), uuid.New(), MatchParams{})
	if !errors.Is(err, ErrNoCandidatesAvailable) {
		t.Fatalf("expected ErrNoCandidatesAvailable, got %v", err)
	}
}

func TestMatchUsecase_FindCandidatesForJob_InvalidFilter(t *testing.T) {
	uc := newTestMatchUsecase(&mockJobRepo{job: testJob()}, &mockCandidateRepo{pool: testPool()}, nil, nil, nil)
	_, err := uc.FindCandidatesForJob(context.Background(), uuid.New(), MatchParams{MinScore: 101})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestMatchUsecase_FindCandidatesForJob_RanksAndCaches(t *testing.T) {
	job := testJob()
	pool := testPool()
	cache := newMemCache()
	uc := newTestMatchUsecase(&mockJobRepo{job: job}, &mockCandidateRepo{pool: pool}, nil, cache, nil)

	page, err := uc.FindCandidatesForJob(context.Background(), job.ID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Items[0].Candidate.Name != "Ada" {
		t.Fatalf("expected Ada before Ben, got %q", page.Items[0].Candidate.Name)
	}
	if page.Items[0].Result.Score != 70 {
		t.Fatalf("expected full required coverage score 70, got %d", page.Items[0].Result.Score)
	}
	if page.Items[1].Result.Score != 0 {
		t.Fatalf("expected zero score for Ben, got %d", page.Items[1].Result.Score)
	}
	if len(cache.sets) != 1 {
		t.Fatalf("expected one cache write, got %d", len(cache.sets))
	}
}

func TestMatchUsecase_FindCandidatesForJob_CacheHit(t *testing.T) {
	jobID := uuid.New()
	params := MatchParams{Page: 1, Limit: 10}
	cache := newMemCache()

	cached := matching.CandidatePage{
		Items:      []matching.CandidateMatch{{Candidate: matching.Candidate{Name: "Cached"}}},
		Pagination: matching.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
	}
	if err := cache.SetJSON(context.Background(), JobMatchesCacheKey(jobID, params), cached, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// Repo failure proves the lookup never leaves the cache.
	uc := newTestMatchUsecase(&mockJobRepo{findErr: errors.New("db down")}, &mockCandidateRepo{}, nil, cache, nil)

	page, err := uc.FindCandidatesForJob(context.Background(), jobID, params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Candidate.Name != "Cached" {
		t.Fatalf("expected cached page, got %+v", page)
	}
}

func TestMatchUsecase_FindCandidatesForJob_RefreshBypassesCache(t *testing.T) {
	job := testJob()
	params := MatchParams{Refresh: true}
	cache := newMemCache()

	stale := matching.CandidatePage{Items: []matching.CandidateMatch{{Candidate: matching.Candidate{Name: "Stale"}}}}
	if err := cache.SetJSON(context.Background(), JobMatchesCacheKey(job.ID, params), stale, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	uc := newTestMatchUsecase(&mockJobRepo{job: job}, &mockCandidateRepo{pool: testPool()}, nil, cache, nil)

	page, err := uc.FindCandidatesForJob(context.Background(), job.ID, params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected recomputed page, got %d items", len(page.Items))
	}

	var stored matching.CandidatePage
	hit, err := cache.GetJSON(context.Background(), JobMatchesCacheKey(job.ID, params), &stored)
	if err != nil || !hit {
		t.Fatalf("expected write-through entry, hit=%v err=%v", hit, err)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("expected refreshed entry in cache, got %d items", len(stored.Items))
	}
}

func TestMatchUsecase_RefreshJobMatches_PersistsAndNotifies(t *testing.T) {
	job := testJob()
	pool := testPool()
	cache := newMemCache()
	matches := &mockMatchRepo{}
	notifier := &mockNotifier{}

	uc := newTestMatchUsecase(&mockJobRepo{job: job}, &mockCandidateRepo{pool: pool}, matches, cache, notifier)

	total, err := uc.RefreshJobMatches(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(matches.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(matches.upserts))
	}
	for _, u := range matches.upserts {
		if u.JobID != job.ID {
			t.Fatalf("upsert carries wrong job id: %s", u.JobID)
		}
	}
	if notifier.calls != 1 || notifier.jobID != job.ID || notifier.total != 2 {
		t.Fatalf("unexpected notification: %+v", notifier)
	}
	if len(cache.deletedPatterns) != 1 || cache.deletedPatterns[0] != "matches:job:"+job.ID.String()+":*" {
		t.Fatalf("expected job pattern invalidation, got %v", cache.deletedPatterns)
	}
}

func TestMatchUsecase_RefreshJobMatches_LockHeld(t *testing.T) {
	job := testJob()
	cache := newMemCache()
	cache.locked = true
	matches := &mockMatchRepo{}
	notifier := &mockNotifier{}

	uc := newTestMatchUsecase(&mockJobRepo{job: job}, &mockCandidateRepo{pool: testPool()}, matches, cache, notifier)

	total, err := uc.RefreshJobMatches(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no-op while lock held, got total %d", total)
	}
	if len(matches.upserts) != 0 || notifier.calls != 0 {
		t.Fatalf("expected no side effects while lock held")
	}
}

func TestMatchUsecase_JobMatchSummary(t *testing.T) {
	job := testJob()
	pool := testPool()
	uc := newTestMatchUsecase(&mockJobRepo{job: job}, &mockCandidateRepo{pool: pool}, nil, nil, nil)

	summary, err := uc.JobMatchSummary(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.JobID != job.ID {
		t.Fatalf("expected job id %s, got %s", job.ID, summary.JobID)
	}
	if summary.CandidateCount != 2 {
		t.Fatalf("expected 2 candidates, got %d", summary.CandidateCount)
	}
	if summary.AverageScore != 35 {
		t.Fatalf("expected average 35, got %v", summary.AverageScore)
	}
	if summary.FitDistribution[matching.FitGood] != 1 || summary.FitDistribution[matching.FitPoor] != 1 {
		t.Fatalf("unexpected fit distribution: %v", summary.FitDistribution)
	}
	if len(summary.TopSkills) != 1 || summary.TopSkills[0].Name != "go" || summary.TopSkills[0].Count != 1 {
		t.Fatalf("unexpected top skills: %v", summary.TopSkills)
	}
}
