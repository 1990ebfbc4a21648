// Package broker is the boundary between the dashboard and a trading
// account. The only implementation shipped is the simulator in broker/sim;
// a real MT5 bridge would satisfy the same interface.
package broker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rustyeddy/fxdesk/market"
)

var (
	ErrMissingCredentials = errors.New("login, password and server are required")
	ErrConnectionFailed   = errors.New("connection failed, check credentials and server")
)

type Broker interface {
	TestConnection(ctx context.Context, creds Credentials) (Session, error)
	GetAccount(ctx context.Context) (Account, error)
	GetTick(ctx context.Context, instrument string) (market.Tick, error)
	Positions(ctx context.Context) ([]market.Position, error)
}

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Server   string `json:"server"`
	Demo     bool   `json:"isDemo"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Login) == "" ||
		c.Password == "" ||
		strings.TrimSpace(c.Server) == "" {
		return ErrMissingCredentials
	}
	return nil
}

type Session struct {
	ID          string    `json:"id"`
	Login       string    `json:"login"`
	Server      string    `json:"server"`
	Demo        bool      `json:"isDemo"`
	ConnectedAt time.Time `json:"connectedAt"`
}

type Account struct {
	ID          string  `json:"id"`
	Currency    string  `json:"currency"`
	Balance     float64 `json:"balance"`
	Equity      float64 `json:"equity"`
	FreeMargin  float64 `json:"freeMargin"`
	MarginLevel float64 `json:"marginLevel"`
	DailyPnL    float64 `json:"dailyPnL"`
	TotalPnL    float64 `json:"totalPnL"`
}
