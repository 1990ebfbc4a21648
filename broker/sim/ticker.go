package sim

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/fxdesk/market"
)

// Step moves every position's price by up to half a pip either way and
// recomputes its P/L and the account equity.
func (b *Broker) Step(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var floating float64
	for i := range b.positions {
		p := &b.positions[i]
		meta, err := market.Lookup(p.Symbol)
		if err != nil {
			continue
		}
		pip := meta.PipSize()

		p.CurrentPrice += (b.rng.Float64() - 0.5) * pip
		b.setTick(p.Symbol, p.CurrentPrice)

		p.PnLPips = (p.CurrentPrice - p.EntryPrice) / pip * p.Direction.Sign()
		rate, err := market.QuoteToAccountRate(ctx, meta.Name, b.acct.Currency, b.ticks)
		if err != nil {
			log.Debug().Err(err).Str("instrument", meta.Name).Msg("no conversion rate, P/L left unchanged")
			floating += p.PnL
			continue
		}
		p.PnL = p.PnLPips * pip * meta.LotUnits * p.Volume * rate
		floating += p.PnL
	}
	b.acct.Equity = b.acct.Balance + floating
}

// Run calls Step every interval until ctx is done.
func (b *Broker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			b.Step(ctx)
		}
	}
}
