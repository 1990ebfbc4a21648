package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/fxdesk/journal"
	"github.com/rustyeddy/fxdesk/risk"
	"github.com/rustyeddy/fxdesk/tier"
)

// Commands reconfigure the global logger, so these tests run serially.

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fxdesk "+version+"\n", out)
}

func TestCalc_Text(t *testing.T) {
	out, err := run(t, "calc", "-i", "EURUSD", "--entry", "1.0875", "--sl", "1.0825", "--risk-amount", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "SL distance:  50.0 pips")
	assert.Contains(t, out, "Lot size:     1.00 lots")
	assert.Contains(t, out, "Risk amount:  500.00 USD")
}

func TestCalc_JSON(t *testing.T) {
	out, err := run(t, "calc", "-i", "EUR_USD", "--entry", "1.0875", "--sl", "1.0825", "--tp", "1.0975",
		"--risk-pct", "1", "--equity", "10000", "--json")
	require.NoError(t, err)

	var got struct {
		Result     risk.Result     `json:"result"`
		Assessment risk.Assessment `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 50, got.Result.StopLossPips, 1e-9)
	assert.InDelta(t, 2, got.Result.RiskRewardRatio, 1e-9)
	assert.InDelta(t, 100, got.Result.RiskAmount, 1e-9)
	assert.InDelta(t, 0.2, got.Result.RecommendedLotSize, 1e-9)
	assert.True(t, got.Assessment.OK)
}

func TestCalc_NoStopLoss(t *testing.T) {
	out, err := run(t, "calc", "-i", "EURUSD", "--entry", "1.0875")
	require.NoError(t, err)
	assert.Contains(t, out, "Lot size:     0.00 lots")
	assert.Contains(t, out, "NO_STOP")
}

func TestCalc_UnknownInstrument(t *testing.T) {
	_, err := run(t, "calc", "-i", "DOGE_BTC", "--entry", "1", "--sl", "0.9")
	assert.Error(t, err)
}

func TestCalc_ExpiredTrial(t *testing.T) {
	t.Setenv("FXDESK_TRIAL_SESSIONS_USED", "2")

	_, err := run(t, "calc", "-i", "EURUSD", "--entry", "1.0875", "--sl", "1.0825")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trial")
}

func TestCalc_RecordsToJournal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fx.sqlite")

	_, err := run(t, "--db", db, "calc", "-i", "GBPUSD", "--entry", "1.2650", "--sl", "1.2600", "--risk-amount", "250")
	require.NoError(t, err)

	out, err := run(t, "--db", db, "journal", "list", "--json")
	require.NoError(t, err)
	var cs []journal.CalculationRecord
	require.NoError(t, json.Unmarshal([]byte(out), &cs))
	require.Len(t, cs, 1)
	assert.Equal(t, "GBP_USD", cs[0].Instrument)
	assert.InDelta(t, 0.5, cs[0].LotSize, 1e-9)

	out, err = run(t, "--db", db, "journal", "show", cs[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, ":INSTRUMENT: GBP_USD")
	assert.Contains(t, out, ":LOT_SIZE: 0.50")

	_, err = run(t, "--db", db, "journal", "show", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.ErrorIs(t, err, journal.ErrNotFound)
}

func TestGate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pro unlocks bot control", []string{"gate", "bot_control", "--tier", "pro"}, "bot_control: enabled on pro"},
		{"trial defaults from config", []string{"gate", "bot_control"}, "bot_control: disabled on trial"},
		{"premium strategy on basic", []string{"gate", "smc_strategy", "-t", "Basic"}, "smc_strategy: disabled on basic"},
		{"unknown feature", []string{"gate", "teleport", "-t", "premium"}, "teleport: disabled on premium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestGate_UnknownTier(t *testing.T) {
	_, err := run(t, "gate", "bot_control", "--tier", "gold")
	assert.ErrorIs(t, err, tier.ErrUnknownTier)
}

func TestGate_RecordsToJournal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fx.sqlite")

	_, err := run(t, "--db", db, "gate", "ai_mode", "-t", "pro")
	require.NoError(t, err)

	out, err := run(t, "--db", db, "journal", "list", "--gates", "--json")
	require.NoError(t, err)
	var gs []journal.GateCheck
	require.NoError(t, json.Unmarshal([]byte(out), &gs))
	require.Len(t, gs, 1)
	assert.Equal(t, "ai_mode", gs[0].Feature)
	assert.True(t, gs[0].Enabled)
}

func TestFeatures(t *testing.T) {
	out, err := run(t, "features", "--tier", "basic")
	require.NoError(t, err)
	assert.Contains(t, out, "plan: basic")
	assert.Contains(t, out, "✓ risk_management")
	assert.Contains(t, out, "  ai_mode")

	out, err = run(t, "features")
	require.NoError(t, err)
	assert.Contains(t, out, "plan: trial (2 demo sessions left)")
}

func TestConfigInitValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fxdesk.yaml")

	out, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Configuration valid")
	assert.Contains(t, out, "Plan:    trial")

	_, err = run(t, "--config", path, "gate", "manual_trades")
	assert.NoError(t, err)
}

func TestConfigValidate_Missing(t *testing.T) {
	_, err := run(t, "config", "validate", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "chatty", "version")
	assert.Error(t, err)
}

func TestJournalList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fx.sqlite")

	for _, args := range [][]string{
		{"calc", "-i", "EURUSD", "--entry", "1.0875", "--sl", "1.0825", "--risk-amount", "500"},
		{"calc", "-i", "USDJPY", "--entry", "150.00", "--sl", "149.50", "--tp", "151.00", "--risk-amount", "100", "--pip-value", "5"},
		{"gate", "ai_mode", "-t", "basic"},
		{"gate", "manual_trades"},
	} {
		_, err := run(t, append([]string{"--db", db}, args...)...)
		require.NoError(t, err, args)
	}

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "calculations as org",
			args: []string{"journal", "list"},
			want: []string{"** Sizing: USD_JPY", "** Sizing: EUR_USD", ":LOT_SIZE: 1.00", ":LOT_SIZE: 0.40", ":TAKE_PROFIT: -"},
		},
		{
			name:    "limit keeps the newest",
			args:    []string{"journal", "list", "-n", "1"},
			want:    []string{"** Sizing: USD_JPY"},
			notWant: []string{"EUR_USD"},
		},
		{
			name: "gate checks",
			args: []string{"journal", "list", "--gates"},
			want: []string{"basic    ai_mode", "false", "trial    manual_trades", "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--db", db}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestJournalShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fx.sqlite")

	_, err := run(t, "--db", db, "calc", "-i", "AUDUSD", "--entry", "0.6600", "--sl", "0.6575", "--risk-amount", "100")
	require.NoError(t, err)

	out, err := run(t, "--db", db, "journal", "list", "--json")
	require.NoError(t, err)
	var cs []journal.CalculationRecord
	require.NoError(t, json.Unmarshal([]byte(out), &cs))
	require.Len(t, cs, 1)

	out, err = run(t, "--db", db, "journal", "show", cs[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, ":ID: "+cs[0].ID)
	assert.Contains(t, out, ":SL_PIPS: 25.0")
	assert.Contains(t, out, ":LOT_SIZE: 0.40")

	_, err = run(t, "--db", db, "journal", "show", "01BX5ZZKBKACTAV9WEVGEMMVRZ")
	assert.ErrorIs(t, err, journal.ErrNotFound)

	_, err = run(t, "--db", db, "journal", "show")
	assert.Error(t, err)
}

func TestJournal_MissingDatabaseIsNotCreated(t *testing.T) {
	db := filepath.Join(t.TempDir(), "absent.sqlite")

	for _, args := range [][]string{
		{"journal", "list"},
		{"journal", "list", "--gates"},
		{"journal", "show", "01BX5ZZKBKACTAV9WEVGEMMVRZ"},
	} {
		_, err := run(t, append([]string{"--db", db}, args...)...)
		require.Error(t, err, args)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "no journal at")
	}

	_, err := os.Stat(db)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
