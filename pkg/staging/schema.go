package staging

import "context"

// migrate creates the necessary database tables
func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS clean_orders (
		run_id           TEXT NOT NULL,
		order_id         TEXT NOT NULL,
		order_date       DATE,
		ship_date        DATE,
		ship_mode        TEXT,
		customer_id      TEXT NOT NULL,
		customer_name    TEXT,
		customer_segment TEXT,
		region           TEXT,
		product_id       TEXT NOT NULL,
		product_name     TEXT,
		category         TEXT,
		sub_category     TEXT,
		sales            DOUBLE PRECISION,
		quantity         INTEGER,
		discount         DOUBLE PRECISION,
		profit           DOUBLE PRECISION,
		returned_count   INTEGER NOT NULL,
		loaded_at        TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS clean_orders_run_idx ON clean_orders (run_id);
	CREATE INDEX IF NOT EXISTS clean_orders_order_idx ON clean_orders (order_id);
	`
	_, err := s.pool.Exec(ctx, schema)
	return err
}
