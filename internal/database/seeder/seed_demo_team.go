package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

// DemoTeamSeeder creates one team with a small required-skill set so
// the gap and match endpoints work on a fresh install.
type DemoTeamSeeder struct{}

func (DemoTeamSeeder) Name() string { return "demo_team" }

func (DemoTeamSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "teams", "id", "name", "description", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "team_required_skills", "team_id", "skill_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO teams (id, name, description)
		 SELECT gen_random_uuid(), $1, $2
		 WHERE NOT EXISTS (SELECT 1 FROM teams WHERE name = $1)`,
		"platform",
		"Demo backend platform team",
	); err != nil {
		return err
	}

	for _, skill := range []string{"go", "postgresql", "docker"} {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO team_required_skills (team_id, skill_id)
			 SELECT t.id, s.id FROM teams t, skills s WHERE t.name = $1 AND s.name = $2
			 ON CONFLICT DO NOTHING`,
			"platform",
			skill,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
