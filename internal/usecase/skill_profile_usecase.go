package usecase

import (
	"context"
	"log"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type MatchInvalidator interface {
	InvalidateJobMatches(ctx context.Context, jobID uuid.UUID) error
	InvalidateCandidateMatches(ctx context.Context, candidateID uuid.UUID) error
}

// SkillProfileUsecase covers the write paths that make cached rankings
// stale: a candidate's skill list and a job's requirement list.
type SkillProfileUsecase interface {
	ReplaceCandidateSkills(ctx context.Context, candidateID uuid.UUID, skills []repository.SkillInput) error
	ReplaceJobSkills(ctx context.Context, jobID uuid.UUID, skills []repository.JobSkillInput) error
}

type SkillProfile struct {
	jobs        repository.JobRepository
	candidates  repository.CandidateRepository
	invalidator MatchInvalidator
	logger      *log.Logger
}

func NewSkillProfileUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	invalidator MatchInvalidator,
	logger *log.Logger,
) *SkillProfile {
	return &SkillProfile{jobs: jobs, candidates: candidates, invalidator: invalidator, logger: logger}
}

func (u *SkillProfile) ReplaceCandidateSkills(ctx context.Context, candidateID uuid.UUID, skills []repository.SkillInput) error {
	if candidateID == uuid.Nil {
		return ErrCandidateNotFound
	}

	exists, err := u.candidates.ExistsByID(ctx, candidateID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrCandidateNotFound
	}

	if err := u.candidates.ReplaceSkills(ctx, candidateID, skills); err != nil {
		return ErrInternal
	}

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateCandidateMatches(ctx, candidateID); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Invalidation failed: candidate=%s err=%v", candidateID, err)
		}
	}
	return nil
}

func (u *SkillProfile) ReplaceJobSkills(ctx context.Context, jobID uuid.UUID, skills []repository.JobSkillInput) error {
	if jobID == uuid.Nil {
		return ErrJobNotFound
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrJobNotFound
	}

	if err := u.jobs.ReplaceSkills(ctx, jobID, skills); err != nil {
		return ErrInternal
	}

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateJobMatches(ctx, jobID); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Invalidation failed: job=%s err=%v", jobID, err)
		}
	}
	return nil
}
