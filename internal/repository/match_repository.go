package repository

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchUpsert struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
	Score       int
	Fit         matching.Fit
	MatchedAt   time.Time
}

// MatchRepository is the optional storeMatch hook: callers may persist a
// computed match for audit, the engine never requires it.
type MatchRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.JobID == uuid.Nil || m.CandidateID == uuid.Nil {
		return nil
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (id, job_id, candidate_id, score, fit, matched_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (job_id, candidate_id) DO UPDATE SET
			score = EXCLUDED.score,
			fit = EXCLUDED.fit,
			matched_at = EXCLUDED.matched_at`,
		uuid.New(),
		m.JobID,
		m.CandidateID,
		m.Score,
		string(m.Fit),
		m.MatchedAt,
	)
	return err
}
