package journal

import (
	"database/sql"
	"errors"
	"fmt"
)

const calcColumns = `id, time, instrument, entry, stop_loss, take_profit, risk_amount, pip_value, sl_pips, risk_reward, lot_size`

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(s scanner) (CalculationRecord, error) {
	var (
		rec    CalculationRecord
		sl, tp sql.NullFloat64
	)
	err := s.Scan(
		&rec.ID,
		&rec.Time,
		&rec.Instrument,
		&rec.Entry,
		&sl,
		&tp,
		&rec.RiskAmount,
		&rec.PipValuePerLot,
		&rec.StopLossPips,
		&rec.RiskReward,
		&rec.LotSize,
	)
	rec.StopLoss = fromNull(sl)
	rec.TakeProfit = fromNull(tp)
	return rec, err
}

// GetCalculation returns a single calculation by ID.
func (j *SQLite) GetCalculation(calcID string) (CalculationRecord, error) {
	row := j.db.QueryRow(`SELECT `+calcColumns+` FROM calculations WHERE id = ?`, calcID)
	rec, err := scanCalculation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalculationRecord{}, fmt.Errorf("calculation %q: %w", calcID, ErrNotFound)
		}
		return CalculationRecord{}, err
	}
	return rec, nil
}

// ListCalculations returns the most recent calculations, newest first.
// A limit <= 0 returns all of them.
func (j *SQLite) ListCalculations(limit int) ([]CalculationRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`SELECT `+calcColumns+` FROM calculations ORDER BY time DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CalculationRecord
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGateChecks returns the most recent gate decisions, newest first.
func (j *SQLite) ListGateChecks(limit int) ([]GateCheck, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`
		SELECT id, time, tier, feature, enabled
		FROM gate_checks
		ORDER BY time DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GateCheck
	for rows.Next() {
		var g GateCheck
		if err := rows.Scan(&g.ID, &g.Time, &g.Tier, &g.Feature, &g.Enabled); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
