package migrations

import (
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_initial_schema",
		Name: "Create provider_keys and executions tables",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS provider_keys (
					id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id       UUID NOT NULL,
					provider      TEXT NOT NULL,
					encrypted_key TEXT NOT NULL,
					active        BOOLEAN NOT NULL DEFAULT TRUE,
					created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			// Active key lookups are always scoped by user and provider
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_provider_keys_user_provider
				ON provider_keys (user_id, provider, active);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS executions (
					id                      UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id                 UUID NOT NULL,
					provider                TEXT NOT NULL,
					model                   TEXT NOT NULL,
					prompt                  TEXT NOT NULL,
					response                TEXT,
					parameters              JSONB,
					success                 BOOLEAN NOT NULL DEFAULT FALSE,
					error_category          TEXT,
					error_message           TEXT,
					latency_ms              BIGINT NOT NULL DEFAULT 0,
					usage_prompt_tokens     BIGINT NOT NULL DEFAULT 0,
					usage_completion_tokens BIGINT NOT NULL DEFAULT 0,
					usage_total_tokens      BIGINT NOT NULL DEFAULT 0,
					estimated_cost          DOUBLE PRECISION NOT NULL DEFAULT 0,
					created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_executions_user_created
				ON executions (user_id, created_at DESC);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_executions_user_provider
				ON executions (user_id, provider);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS executions;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP TABLE IF EXISTS provider_keys;`).Error
		},
	})
}
