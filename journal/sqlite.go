package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/fxdesk/pkg/id"
)

type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

var _ Journal = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db, now: time.Now}, nil
}

// stamp fills in the time and ID of a record that arrived without them.
func (j *SQLite) stamp(t *time.Time, rid *string) {
	if t.IsZero() {
		*t = j.now().UTC()
	}
	if *rid == "" {
		*rid = id.NewAt(*t)
	}
}

func (j *SQLite) RecordCalculation(c CalculationRecord) error {
	j.stamp(&c.Time, &c.ID)
	_, err := j.db.Exec(`
		INSERT INTO calculations
		(id, time, instrument, entry, stop_loss, take_profit, risk_amount, pip_value, sl_pips, risk_reward, lot_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Time, c.Instrument, c.Entry, nullable(c.StopLoss), nullable(c.TakeProfit),
		c.RiskAmount, c.PipValuePerLot, c.StopLossPips, c.RiskReward, c.LotSize,
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

func (j *SQLite) RecordGateCheck(g GateCheck) error {
	j.stamp(&g.Time, &g.ID)
	_, err := j.db.Exec(`
		INSERT INTO gate_checks (id, time, tier, feature, enabled)
		VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.Time, g.Tier, g.Feature, g.Enabled,
	)
	if err != nil {
		return fmt.Errorf("insert gate check: %w", err)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func nullable(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func fromNull(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
