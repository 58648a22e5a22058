package repository

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type SkillInput struct {
	SkillID     uuid.UUID
	Proficiency *int
}

type CandidateRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (matching.Candidate, error)
	ListCandidates(ctx context.Context) ([]matching.Candidate, error)
	ReplaceSkills(ctx context.Context, candidateID uuid.UUID, skills []SkillInput) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (matching.Candidate, error) {
	rows, err := r.db.Query(ctx, candidateSelect+` WHERE c.id = $1 ORDER BY s.name ASC`, id)
	if err != nil {
		return matching.Candidate{}, err
	}
	defer rows.Close()

	out, err := scanCandidates(rows)
	if err != nil {
		return matching.Candidate{}, err
	}
	if len(out) == 0 {
		return matching.Candidate{}, ErrCandidateNotFound
	}
	return out[0], nil
}

func (r *PostgresCandidateRepository) ListCandidates(ctx context.Context) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx, candidateSelect+` ORDER BY c.id ASC, s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

func (r *PostgresCandidateRepository) ReplaceSkills(ctx context.Context, candidateID uuid.UUID, skills []SkillInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1`, candidateID); err != nil {
		return err
	}
	for _, s := range skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_skills (id, candidate_id, skill_id, proficiency)
			 VALUES ($1, $2, $3, $4)`,
			uuid.New(), candidateID, s.SkillID, s.Proficiency,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const candidateSelect = `
	SELECT c.id, c.name, c.email,
	       COALESCE(c.experience_level, ''), COALESCE(c.location, ''), COALESCE(c.remote, FALSE),
	       c.available_from, c.available_to,
	       s.id, s.name, COALESCE(s.category, ''), cs.proficiency
	FROM candidates c
	LEFT JOIN candidate_skills cs ON cs.candidate_id = c.id
	LEFT JOIN skills s ON s.id = cs.skill_id`

func scanCandidates(rows database.Rows) ([]matching.Candidate, error) {
	byID := make(map[uuid.UUID]int)
	out := make([]matching.Candidate, 0)

	for rows.Next() {
		var (
			c           matching.Candidate
			from, to    *time.Time
			skillID     *uuid.UUID
			skillName   *string
			category    *string
			proficiency *int
		)
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email,
			&c.ExperienceLevel, &c.Location, &c.Remote,
			&from, &to,
			&skillID, &skillName, &category, &proficiency,
		); err != nil {
			return nil, err
		}
		c.AvailableFrom = from
		c.AvailableTo = to

		idx, ok := byID[c.ID]
		if !ok {
			c.Skills = make([]matching.Skill, 0, 4)
			out = append(out, c)
			idx = len(out) - 1
			byID[c.ID] = idx
		}
		if skillID != nil && skillName != nil {
			sk := matching.Skill{ID: *skillID, Name: *skillName, Proficiency: proficiency}
			if category != nil {
				sk.Category = *category
			}
			out[idx].Skills = append(out[idx].Skills, sk)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
