package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/database/postgres"
)

// Statements cria as tabelas de eventos brutos usadas pelo dashboard.
// Em produção as tabelas pertencem ao pipeline de ingestão; aqui servem ao ambiente local.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS tax_events (
		id            VARCHAR(32) PRIMARY KEY,
		cus_cust_id   BIGINT NOT NULL,
		event_type    VARCHAR(32) NOT NULL,
		serpro_status VARCHAR(32),
		total_amount  NUMERIC(14, 2),
		fiscal_year   INT,
		fiscal_month  INT,
		event_date    TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tax_events_type_date ON tax_events (event_type, event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tax_events_seller ON tax_events (cus_cust_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tax_events_fiscal ON tax_events (fiscal_year, fiscal_month)`,
	`CREATE TABLE IF NOT EXISTS pendings (
		id          VARCHAR(32) PRIMARY KEY,
		user_id     BIGINT NOT NULL,
		content_id  VARCHAR(128) NOT NULL,
		event       VARCHAR(16) NOT NULL,
		reason      VARCHAR(32),
		criticality VARCHAR(16),
		created_at  TIMESTAMPTZ NOT NULL,
		published   TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pendings_content ON pendings (content_id, event, reason)`,
}

// Apply executa todas as instruções na mesma transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar instrução %d do schema: %w", i+1, err)
			}
		}
		logrus.WithField("statements", len(Statements)).Info("Schema aplicado")
		return nil
	})
}
