package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"EURUSD", "EUR_USD"},
		{"eur/usd", "EUR_USD"},
		{" EUR_USD ", "EUR_USD"},
		{"xau-usd", "XAU_USD"},
		{"SPX500", "SPX_500"},
		{"BTC", "BTC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSymbol(tt.in))
		})
	}
}

func TestLookupAndPipSize(t *testing.T) {
	t.Parallel()

	m, err := Lookup("EURUSD")
	require.NoError(t, err)
	assert.InDelta(t, 0.0001, m.PipSize(), 1e-12)

	m, err = Lookup("USDJPY")
	require.NoError(t, err)
	assert.InDelta(t, 0.01, m.PipSize(), 1e-12)

	_, err = Lookup("NOPE")
	assert.Error(t, err)
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.Len(t, names, len(Instruments))
	assert.IsIncreasing(t, names)
}

func TestTickMidSpread(t *testing.T) {
	t.Parallel()

	tk := Tick{Bid: 1.0849, Ask: 1.0851}
	assert.InDelta(t, 1.0850, tk.Mid(), 1e-12)
	assert.InDelta(t, 0.0002, tk.Spread(), 1e-12)
}

func TestTickStore(t *testing.T) {
	t.Parallel()

	s := NewTickStore()
	_, err := s.Get("EUR_USD")
	assert.ErrorIs(t, err, ErrNoTick)

	s.Set(Tick{Instrument: "EUR_USD", Bid: 1, Ask: 2})
	tk, err := s.Get("EUR_USD")
	require.NoError(t, err)
	assert.Equal(t, 1.5, tk.Mid())
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	d, err := ParseDirection("buy")
	require.NoError(t, err)
	assert.Equal(t, Buy, d)
	assert.Equal(t, 1.0, d.Sign())

	d, err = ParseDirection(" SELL")
	require.NoError(t, err)
	assert.Equal(t, -1.0, d.Sign())

	_, err = ParseDirection("hold")
	assert.Error(t, err)
}
