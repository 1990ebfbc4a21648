// Package sim is a stand-in broker for demos and tests. Connection tests
// succeed at random after a fixed delay, and a ticker walks prices so the
// dashboard has something moving to show.
package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/fxdesk/broker"
	"github.com/rustyeddy/fxdesk/market"
)

const (
	DefaultSuccessRate = 0.7
	DefaultDelay       = 2 * time.Second
)

type Broker struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate float64
	delay       time.Duration
	now         func() time.Time

	acct      broker.Account
	ticks     *market.TickStore
	positions []market.Position
}

var _ broker.Broker = (*Broker)(nil)

type Option func(*Broker)

func WithSuccessRate(p float64) Option {
	return func(b *Broker) { b.successRate = p }
}

func WithDelay(d time.Duration) Option {
	return func(b *Broker) { b.delay = d }
}

// WithRand injects the random source so tests are deterministic.
func WithRand(r *rand.Rand) Option {
	return func(b *Broker) { b.rng = r }
}

func WithAccount(a broker.Account) Option {
	return func(b *Broker) { b.acct = a }
}

func WithPositions(ps []market.Position) Option {
	return func(b *Broker) { b.positions = append([]market.Position(nil), ps...) }
}

func WithClock(now func() time.Time) Option {
	return func(b *Broker) { b.now = now }
}

// New returns a simulator seeded with the demo account and positions.
func New(opts ...Option) *Broker {
	b := &Broker{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		successRate: DefaultSuccessRate,
		delay:       DefaultDelay,
		now:         time.Now,
		acct:        DemoAccount(),
		ticks:       market.NewTickStore(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.positions == nil {
		b.positions = DemoPositions(b.now())
	}
	for _, p := range b.positions {
		b.setTick(p.Symbol, p.CurrentPrice)
	}
	return b
}

func (b *Broker) TestConnection(ctx context.Context, creds broker.Credentials) (broker.Session, error) {
	if err := creds.Validate(); err != nil {
		return broker.Session{}, err
	}

	if b.delay > 0 {
		t := time.NewTimer(b.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return broker.Session{}, ctx.Err()
		case <-t.C:
		}
	}

	b.mu.Lock()
	ok := b.rng.Float64() < b.successRate
	b.mu.Unlock()

	if !ok {
		log.Warn().Str("login", creds.Login).Str("server", creds.Server).Msg("simulated connection failed")
		return broker.Session{}, broker.ErrConnectionFailed
	}

	s := broker.Session{
		ID:          uuid.NewString(),
		Login:       creds.Login,
		Server:      creds.Server,
		Demo:        creds.Demo,
		ConnectedAt: b.now().UTC(),
	}
	log.Info().Str("session", s.ID).Str("server", s.Server).Msg("simulated connection established")
	return s, nil
}

func (b *Broker) GetAccount(ctx context.Context) (broker.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.acct, nil
}

func (b *Broker) GetTick(ctx context.Context, instrument string) (market.Tick, error) {
	return b.ticks.Get(market.NormalizeSymbol(instrument))
}

// Ticks exposes the simulator's prices as a TickSource.
func (b *Broker) Ticks() *market.TickStore {
	return b.ticks
}

// Positions returns a copy of the open positions.
func (b *Broker) Positions(ctx context.Context) ([]market.Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]market.Position(nil), b.positions...), nil
}

// setTick publishes price with a one-pip spread around it.
func (b *Broker) setTick(symbol string, price float64) {
	name := market.NormalizeSymbol(symbol)
	half := 0.0
	if meta, err := market.Lookup(name); err == nil {
		half = meta.PipSize() / 2
	}
	b.ticks.Set(market.Tick{
		Instrument: name,
		Time:       b.now().UTC(),
		Bid:        price - half,
		Ask:        price + half,
	})
}
