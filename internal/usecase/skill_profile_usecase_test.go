package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockInvalidator struct {
	jobIDs       []uuid.UUID
	candidateIDs []uuid.UUID
}

func (m *mockInvalidator) InvalidateJobMatches(_ context.Context, jobID uuid.UUID) error {
	m.jobIDs = append(m.jobIDs, jobID)
	return nil
}

func (m *mockInvalidator) InvalidateCandidateMatches(_ context.Context, candidateID uuid.UUID) error {
	m.candidateIDs = append(m.candidateIDs, candidateID)
	return nil
}

func TestSkillProfileUsecase_ReplaceCandidateSkills_NotFound(t *testing.T) {
	uc := NewSkillProfileUsecase(&mockJobRepo{}, &mockCandidateRepo{exists: false}, nil, nil)
	err := uc.ReplaceCandidateSkills(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestSkillProfileUsecase_ReplaceCandidateSkills_Invalidates(t *testing.T) {
	candidates := &mockCandidateRepo{exists: true}
	inv := &mockInvalidator{}
	uc := NewSkillProfileUsecase(&mockJobRepo{}, candidates, inv, nil)

	candidateID := uuid.New()
	skills := []repository.SkillInput{{SkillID: uuid.New()}}
	if err := uc.ReplaceCandidateSkills(context.Background(), candidateID, skills); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(candidates.replaced) != 1 {
		t.Fatalf("expected one replace call, got %d", len(candidates.replaced))
	}
	if len(inv.candidateIDs) != 1 || inv.candidateIDs[0] != candidateID {
		t.Fatalf("expected candidate invalidation for %s, got %v", candidateID, inv.candidateIDs)
	}
}

func TestSkillProfileUsecase_ReplaceJobSkills_NotFound(t *testing.T) {
	uc := NewSkillProfileUsecase(&mockJobRepo{exists: false}, &mockCandidateRepo{}, nil, nil)
	err := uc.ReplaceJobSkills(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSkillProfileUsecase_ReplaceJobSkills_Invalidates(t *testing.T) {
	jobs := &mockJobRepo{exists: true}
	inv := &mockInvalidator{}
	uc := NewSkillProfileUsecase(jobs, &mockCandidateRepo{}, inv, nil)

	jobID := uuid.New()
	skills := []repository.JobSkillInput{{SkillID: uuid.New(), Required: true}}
	if err := uc.ReplaceJobSkills(context.Background(), jobID, skills); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs.replaced) != 1 {
		t.Fatalf("expected one replace call, got %d", len(jobs.replaced))
	}
	if len(inv.jobIDs) != 1 || inv.jobIDs[0] != jobID {
		t.Fatalf("expected job invalidation for %s, got %v", jobID, inv.jobIDs)
	}
}
