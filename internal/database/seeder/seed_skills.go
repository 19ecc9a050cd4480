package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

// SkillsSeeder loads a baseline skill catalog. Names are stored
// lowercased, matching the registry's normalization.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"go",
		"python",
		"javascript",
		"typescript",
		"django",
		"react",
		"postgresql",
		"redis",
		"docker",
		"kubernetes",
		"aws",
		"gcp",
	}

	for _, name := range names {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
