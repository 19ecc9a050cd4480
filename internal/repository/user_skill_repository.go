package repository

import (
	"context"

	"skillmatch/internal/database"

	"github.com/google/uuid"
)

type UserSkill struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Level           string
	ExperienceYears int
	IsActive        bool
}

// SkillAssignment is one entry of a full-profile replace.
type SkillAssignment struct {
	Name            string
	Level           string
	ExperienceYears int
	IsActive        bool
}

// HeldSkillRow is a user-skill row joined with the holder's identity,
// as the matching engine consumes it.
type HeldSkillRow struct {
	UserID    uuid.UUID
	Username  string
	SkillName string
	Level     string
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]UserSkill, error)
	FindHoldersBySkillIDs(ctx context.Context, skillIDs []uuid.UUID) ([]HeldSkillRow, error)
	SkillNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, entries []SkillAssignment) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

const userSkillSelect = `
SELECT us.id, us.user_id, us.skill_id, s.name, us.level, us.experience_years, us.is_active
FROM user_skills us
JOIN skills s ON s.id = us.skill_id`

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx, userSkillSelect+` WHERE us.user_id = $1 ORDER BY s.name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		us, err := scanUserSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]UserSkill, error) {
	out := make(map[uuid.UUID][]UserSkill, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, userSkillSelect+` WHERE us.user_id = ANY($1) ORDER BY s.name ASC`, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		us, err := scanUserSkill(rows)
		if err != nil {
			return nil, err
		}
		out[us.UserID] = append(out[us.UserID], us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) FindHoldersBySkillIDs(ctx context.Context, skillIDs []uuid.UUID) ([]HeldSkillRow, error) {
	if len(skillIDs) == 0 {
		return []HeldSkillRow{}, nil
	}

	rows, err := r.db.Query(ctx, `
SELECT us.user_id, u.username, s.name, us.level
FROM user_skills us
JOIN users u ON u.id = us.user_id
JOIN skills s ON s.id = us.skill_id
WHERE us.skill_id = ANY($1)
ORDER BY u.username ASC, s.name ASC`, skillIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HeldSkillRow, 0)
	for rows.Next() {
		var h HeldSkillRow
		if err := rows.Scan(&h.UserID, &h.Username, &h.SkillName, &h.Level); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) SkillNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `
SELECT s.name
FROM user_skills us
JOIN skills s ON s.id = us.skill_id
WHERE us.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceForUser swaps the user's whole profile in one transaction:
// delete everything, then get-or-create each skill and insert the new
// rows. The transaction keeps the empty intermediate state invisible.
func (r *PostgresUserSkillRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, entries []SkillAssignment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, e := range entries {
		// Upsert-returning so existing registry entries resolve in the
		// same statement as lazy creation.
		var skillID uuid.UUID
		row := tx.QueryRow(ctx, `
INSERT INTO skills (id, name) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, uuid.New(), e.Name)
		if err := row.Scan(&skillID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO user_skills (id, user_id, skill_id, level, experience_years, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, skill_id) DO UPDATE
SET level = EXCLUDED.level, experience_years = EXCLUDED.experience_years, is_active = EXCLUDED.is_active`,
			uuid.New(), userID, skillID, e.Level, e.ExperienceYears, e.IsActive,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func scanUserSkill(row database.Row) (UserSkill, error) {
	var us UserSkill
	err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Level, &us.ExperienceYears, &us.IsActive)
	if err != nil {
		return UserSkill{}, err
	}
	return us, nil
}
