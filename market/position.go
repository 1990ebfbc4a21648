package market

import (
	"fmt"
	"strings"
	"time"
)

type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	}
	return "", fmt.Errorf("invalid direction %q", s)
}

// Sign is +1 for BUY and -1 for SELL.
func (d Direction) Sign() float64 {
	if d == Sell {
		return -1
	}
	return 1
}

// Position is an open position as reported by the broker. StopLoss and
// TakeProfit are nil when the level is not set.
type Position struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	Direction    Direction `json:"type"`
	Volume       float64   `json:"volume"`
	EntryPrice   float64   `json:"openPrice"`
	CurrentPrice float64   `json:"currentPrice"`
	PnL          float64   `json:"pnl"`
	PnLPips      float64   `json:"pnlPips"`
	OpenTime     time.Time `json:"openTime"`
	StopLoss     *float64  `json:"stopLoss,omitempty"`
	TakeProfit   *float64  `json:"takeProfit,omitempty"`
}

// Level returns a pointer to v, for filling optional price levels.
func Level(v float64) *float64 {
	return &v
}
