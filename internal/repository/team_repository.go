package repository

import (
	"context"
	"errors"

	"skillmatch/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrTeamNotFound = errors.New("team not found")

type Team struct {
	ID          uuid.UUID
	Name        string
	Description string
}

type TeamMember struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	Role        string
	IsActive    bool
}

type TeamRepository interface {
	ListTeams(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (Team, error)
	Create(ctx context.Context, name, description string, requiredSkillIDs []uuid.UUID) (Team, error)
	Update(ctx context.Context, id uuid.UUID, name, description string, requiredSkillIDs []uuid.UUID) (Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RequiredSkills(ctx context.Context, teamID uuid.UUID) ([]Skill, error)
	Members(ctx context.Context, teamID uuid.UUID) ([]TeamMember, error)
	UpsertMember(ctx context.Context, teamID, userID uuid.UUID, role string, isActive bool) error
}

type PostgresTeamRepository struct {
	db database.DB
}

func NewPostgresTeamRepository(db database.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM teams ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Team, 0)
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (Team, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, description FROM teams WHERE id = $1`, id)

	var t Team
	if err := row.Scan(&t.ID, &t.Name, &t.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Team{}, ErrTeamNotFound
		}
		return Team{}, err
	}
	return t, nil
}

func (r *PostgresTeamRepository) Create(ctx context.Context, name, description string, requiredSkillIDs []uuid.UUID) (Team, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Team{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	id := uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO teams (id, name, description) VALUES ($1, $2, $3)`,
		id, name, description,
	); err != nil {
		return Team{}, err
	}

	if err := setRequiredSkills(ctx, tx, id, requiredSkillIDs); err != nil {
		return Team{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Team{}, err
	}
	return Team{ID: id, Name: name, Description: description}, nil
}

func (r *PostgresTeamRepository) Update(ctx context.Context, id uuid.UUID, name, description string, requiredSkillIDs []uuid.UUID) (Team, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Team{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx,
		`UPDATE teams SET name = $1, description = $2 WHERE id = $3`,
		name, description, id,
	)
	if err != nil {
		return Team{}, err
	}
	if affected == 0 {
		return Team{}, ErrTeamNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM team_required_skills WHERE team_id = $1`, id); err != nil {
		return Team{}, err
	}
	if err := setRequiredSkills(ctx, tx, id, requiredSkillIDs); err != nil {
		return Team{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Team{}, err
	}
	return Team{ID: id, Name: name, Description: description}, nil
}

func (r *PostgresTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *PostgresTeamRepository) RequiredSkills(ctx context.Context, teamID uuid.UUID) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `
SELECT s.id, s.name
FROM team_required_skills trs
JOIN skills s ON s.id = trs.skill_id
WHERE trs.team_id = $1
ORDER BY s.name ASC`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTeamRepository) Members(ctx context.Context, teamID uuid.UUID) ([]TeamMember, error) {
	rows, err := r.db.Query(ctx, `
SELECT tr.user_id, u.username, u.display_name, tr.role, tr.is_active
FROM team_roles tr
JOIN users u ON u.id = tr.user_id
WHERE tr.team_id = $1
ORDER BY u.username ASC`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TeamMember, 0)
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.UserID, &m.Username, &m.DisplayName, &m.Role, &m.IsActive); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTeamRepository) UpsertMember(ctx context.Context, teamID, userID uuid.UUID, role string, isActive bool) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO team_roles (id, team_id, user_id, role, is_active)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (team_id, user_id) DO UPDATE SET role = EXCLUDED.role, is_active = EXCLUDED.is_active`,
		uuid.New(), teamID, userID, role, isActive,
	)
	return err
}

func setRequiredSkills(ctx context.Context, tx database.Tx, teamID uuid.UUID, skillIDs []uuid.UUID) error {
	for _, sid := range skillIDs {
		if _, err := tx.Exec(ctx, `
INSERT INTO team_required_skills (team_id, skill_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`, teamID, sid); err != nil {
			return err
		}
	}
	return nil
}
