package usecase

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestJobMatchesCacheKey_NormalizesParams(t *testing.T) {
	jobID := uuid.New()

	a := JobMatchesCacheKey(jobID, MatchParams{Skills: []string{"  Go ", "PostgreSQL"}, Location: " Jakarta "})
	b := JobMatchesCacheKey(jobID, MatchParams{Skills: []string{"go", "postgresql"}, Location: "jakarta"})
	if a != b {
		t.Fatalf("expected normalized params to share a key:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "matches:job:"+jobID.String()+":") {
		t.Fatalf("unexpected key shape: %s", a)
	}
}

func TestJobMatchesCacheKey_DistinguishesParams(t *testing.T) {
	jobID := uuid.New()

	a := JobMatchesCacheKey(jobID, MatchParams{MinScore: 40})
	b := JobMatchesCacheKey(jobID, MatchParams{MinScore: 60})
	if a == b {
		t.Fatalf("expected different keys for different filters: %s", a)
	}

	paged := JobMatchesCacheKey(jobID, MatchParams{Page: 2})
	if a == paged {
		t.Fatalf("expected page to be part of the key")
	}
}

func TestCandidateMatchesCacheKey_SeparateNamespace(t *testing.T) {
	id := uuid.New()
	if JobMatchesCacheKey(id, MatchParams{}) == CandidateMatchesCacheKey(id, MatchParams{}) {
		t.Fatalf("job and candidate keys must not collide")
	}
}

func TestJobMatchesLockKey(t *testing.T) {
	jobID := uuid.New()
	want := "matches:lock:job:" + jobID.String()
	if got := JobMatchesLockKey(jobID); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
