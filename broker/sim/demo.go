package sim

import (
	"time"

	"github.com/rustyeddy/fxdesk/broker"
	"github.com/rustyeddy/fxdesk/market"
)

func DemoAccount() broker.Account {
	return broker.Account{
		ID:          "DEMO-001",
		Currency:    "USD",
		Balance:     50000.00,
		Equity:      52347.85,
		FreeMargin:  48932.15,
		MarginLevel: 2847.3,
		DailyPnL:    847.85,
		TotalPnL:    2347.85,
	}
}

// DemoPositions are the three open trades the dashboard opens with.
func DemoPositions(now time.Time) []market.Position {
	return []market.Position{
		{
			ID:           "1",
			Symbol:       "EURUSD",
			Direction:    market.Buy,
			Volume:       0.10,
			EntryPrice:   1.0876,
			CurrentPrice: 1.0892,
			PnL:          160.00,
			PnLPips:      16.0,
			OpenTime:     now.Add(-2 * time.Hour).UTC(),
			StopLoss:     market.Level(1.0826),
			TakeProfit:   market.Level(1.0926),
		},
		{
			ID:           "2",
			Symbol:       "GBPUSD",
			Direction:    market.Sell,
			Volume:       0.15,
			EntryPrice:   1.2654,
			CurrentPrice: 1.2638,
			PnL:          240.00,
			PnLPips:      16.0,
			OpenTime:     now.Add(-5 * time.Hour).UTC(),
			StopLoss:     market.Level(1.2704),
			TakeProfit:   market.Level(1.2604),
		},
		{
			ID:           "3",
			Symbol:       "USDJPY",
			Direction:    market.Buy,
			Volume:       0.08,
			EntryPrice:   149.32,
			CurrentPrice: 149.18,
			PnL:          -112.00,
			PnLPips:      -14.0,
			OpenTime:     now.Add(-1 * time.Hour).UTC(),
			StopLoss:     market.Level(148.82),
			TakeProfit:   market.Level(149.82),
		},
	}
}
