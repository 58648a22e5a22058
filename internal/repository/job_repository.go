package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobSkillInput struct {
	SkillID     uuid.UUID
	Required    bool
	Proficiency *int
}

type JobRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (matching.JobRequirement, error)
	ListJobs(ctx context.Context) ([]matching.JobRequirement, error)
	ReplaceSkills(ctx context.Context, jobID uuid.UUID, skills []JobSkillInput) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (matching.JobRequirement, error) {
	rows, err := r.db.Query(ctx, jobSelect+` WHERE j.id = $1 ORDER BY s.name ASC`, id)
	if err != nil {
		return matching.JobRequirement{}, err
	}
	defer rows.Close()

	out, err := scanJobs(rows)
	if err != nil {
		return matching.JobRequirement{}, err
	}
	if len(out) == 0 {
		return matching.JobRequirement{}, ErrJobNotFound
	}
	return out[0], nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context) ([]matching.JobRequirement, error) {
	rows, err := r.db.Query(ctx, jobSelect+` ORDER BY j.id ASC, s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *PostgresJobRepository) ReplaceSkills(ctx context.Context, jobID uuid.UUID, skills []JobSkillInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, s := range skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_skills (id, job_id, skill_id, is_required, proficiency)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), jobID, s.SkillID, s.Required, s.Proficiency,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const jobSelect = `
	SELECT j.id, COALESCE(j.title, ''), COALESCE(j.company, ''),
	       COALESCE(j.location, ''), COALESCE(j.remote, FALSE),
	       s.id, s.name, COALESCE(s.category, ''), js.proficiency, js.is_required
	FROM jobs j
	LEFT JOIN job_skills js ON js.job_id = j.id
	LEFT JOIN skills s ON s.id = js.skill_id`

func scanJobs(rows database.Rows) ([]matching.JobRequirement, error) {
	byID := make(map[uuid.UUID]int)
	out := make([]matching.JobRequirement, 0)

	for rows.Next() {
		var (
			j           matching.JobRequirement
			skillID     *uuid.UUID
			skillName   *string
			category    *string
			proficiency *int
			required    *bool
		)
		if err := rows.Scan(
			&j.ID, &j.Title, &j.CompanyName, &j.Location, &j.Remote,
			&skillID, &skillName, &category, &proficiency, &required,
		); err != nil {
			return nil, err
		}

		idx, ok := byID[j.ID]
		if !ok {
			j.RequiredSkills = make([]matching.Skill, 0, 4)
			j.PreferredSkills = make([]matching.Skill, 0, 4)
			out = append(out, j)
			idx = len(out) - 1
			byID[j.ID] = idx
		}
		if skillID != nil && skillName != nil {
			sk := matching.Skill{ID: *skillID, Name: *skillName, Proficiency: proficiency}
			if category != nil {
				sk.Category = *category
			}
			if required != nil && *required {
				out[idx].RequiredSkills = append(out[idx].RequiredSkills, sk)
			} else {
				out[idx].PreferredSkills = append(out[idx].PreferredSkills, sk)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
