package repository

import (
	"context"
	"fmt"
)

const schemaQuery = `
	CREATE TABLE IF NOT EXISTS public.locations (
		record_id              SERIAL PRIMARY KEY,
		latitude               TEXT,
		longitude              TEXT,
		address                TEXT,
		matched_reference      TEXT,
		normalized_at          TIMESTAMPTZ,
		normalization_attempts INTEGER NOT NULL DEFAULT 0,
		normalization_error    TEXT,
		created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// EnsureSchema creates the locations table when it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaQuery); err != nil {
		return fmt.Errorf("failed to create locations table: %w", err)
	}
	return nil
}
