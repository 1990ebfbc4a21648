package journal

const Schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	instrument TEXT NOT NULL,
	entry REAL NOT NULL,
	stop_loss REAL,
	take_profit REAL,
	risk_amount REAL NOT NULL,
	pip_value REAL NOT NULL,
	sl_pips REAL NOT NULL,
	risk_reward REAL NOT NULL,
	lot_size REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_time ON calculations(time);

CREATE TABLE IF NOT EXISTS gate_checks (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	tier TEXT NOT NULL,
	feature TEXT NOT NULL,
	enabled INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_gate_checks_time ON gate_checks(time);
`
