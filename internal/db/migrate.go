package db

import (
	"context"
	"database/sql"
)

const keystoneMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS signin_audit (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    request_id text NOT NULL DEFAULT '',
    operation text NOT NULL,
    provider text NOT NULL DEFAULT '',
    status text NOT NULL,
    had_identity boolean NOT NULL DEFAULT false,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS signin_audit_created_at_idx
ON signin_audit (created_at);

CREATE INDEX IF NOT EXISTS signin_audit_operation_idx
ON signin_audit (operation, status);
`

func RunKeystoneMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, keystoneMigration)
	return err
}
