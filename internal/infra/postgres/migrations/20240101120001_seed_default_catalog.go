package migrations

import (
	"context"
	"encoding/json"

	"github.com/uptrace/bun"

	"slopbowl-service/internal/domain"
)

func init() {
	// Seed the built-in catalog so a fresh database serves the quiz without
	// manual content loading.
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			catalog := domain.DefaultCatalog()
			data, err := json.Marshal(catalog)
			if err != nil {
				return err
			}
			_, err = db.ExecContext(ctx,
				`INSERT INTO catalogs (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO NOTHING`,
				catalog.ID, string(data))
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DELETE FROM catalogs WHERE id = ?`, domain.DefaultCatalogID)
			return err
		},
	)
}
