package matching

import (
	"sort"
	"strings"
	"sync"
)

const defaultWorkers = 8

type Config struct {
	ProficiencyWeighting bool
	Workers              int
}

// Engine ranks a pool of candidates against one job requirement, or a pool
// of jobs against one candidate. Scoring reads only immutable inputs, so
// the pool is mapped concurrently.
type Engine struct {
	eq      Equivalence
	scorer  *Scorer
	workers int
}

func NewEngine(eq Equivalence, cfg Config) *Engine {
	if eq == nil {
		eq = NewSynonymEquivalence(DefaultSynonyms)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Engine{
		eq:      eq,
		scorer:  NewScorer(eq, cfg.ProficiencyWeighting),
		workers: workers,
	}
}

type RankOptions struct {
	Filter Filter
	Page   int
	Limit  int
}

func (e *Engine) RankCandidates(job JobRequirement, pool []Candidate, opts RankOptions) (CandidatePage, error) {
	if err := opts.Filter.Validate(); err != nil {
		return CandidatePage{}, err
	}

	eligible := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if opts.Filter.matchesCandidate(e.eq, c) {
			eligible = append(eligible, c)
		}
	}

	results := make([]CandidateMatch, len(eligible))
	e.parallel(len(eligible), func(i int) {
		c := eligible[i]
		results[i] = CandidateMatch{Candidate: c, Result: e.Score(c, job)}
	})

	kept := results[:0]
	for _, r := range results {
		if r.Result.Score >= opts.Filter.MinScore {
			kept = append(kept, r)
		}
	}

	// Ties break on candidate id so identical inputs rank identically.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Result.Score != kept[j].Result.Score {
			return kept[i].Result.Score > kept[j].Result.Score
		}
		return strings.Compare(kept[i].Candidate.ID.String(), kept[j].Candidate.ID.String()) < 0
	})

	page, limit := normalizePage(opts.Page, opts.Limit)
	meta := paginate(len(kept), page, limit)
	return CandidatePage{Items: slicePage(kept, page, limit), Pagination: meta}, nil
}

func (e *Engine) RankJobs(candidate Candidate, pool []JobRequirement, opts RankOptions) (JobPage, error) {
	if err := opts.Filter.Validate(); err != nil {
		return JobPage{}, err
	}

	eligible := make([]JobRequirement, 0, len(pool))
	for _, j := range pool {
		if opts.Filter.matchesJob(e.eq, j) {
			eligible = append(eligible, j)
		}
	}

	results := make([]JobMatch, len(eligible))
	e.parallel(len(eligible), func(i int) {
		j := eligible[i]
		results[i] = JobMatch{Job: j, Result: e.Score(candidate, j)}
	})

	kept := results[:0]
	for _, r := range results {
		if r.Result.Score >= opts.Filter.MinScore {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Result.Score != kept[j].Result.Score {
			return kept[i].Result.Score > kept[j].Result.Score
		}
		return strings.Compare(kept[i].Job.ID.String(), kept[j].Job.ID.String()) < 0
	})

	page, limit := normalizePage(opts.Page, opts.Limit)
	meta := paginate(len(kept), page, limit)
	return JobPage{Items: slicePage(kept, page, limit), Pagination: meta}, nil
}

// Score computes one candidate/job pair. Direction-agnostic: the same path
// serves both RankCandidates and RankJobs.
func (e *Engine) Score(candidate Candidate, job JobRequirement) MatchResult {
	breakdown := e.scorer.Score(candidate.Skills, job.RequiredSkills, job.PreferredSkills)
	return MatchResult{
		CandidateID:    candidate.ID,
		Score:          breakdown.Score,
		MatchingSkills: breakdown.MatchingSkills,
		SkillGaps:      breakdown.SkillGaps,
		OverallFit:     ClassifyFit(breakdown.Score),
	}
}

func (e *Engine) parallel(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers := e.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	idx := make(chan int, n)
	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

func paginate(total, page, limit int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page*limit < total,
		HasPrev:    page > 1 && total > 0,
	}
}

func slicePage[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
