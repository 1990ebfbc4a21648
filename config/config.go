package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/fxdesk/market"
	"github.com/rustyeddy/fxdesk/risk"
	"github.com/rustyeddy/fxdesk/tier"
)

// Config is everything the dashboard backend needs at startup.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Profile tier.Profile  `json:"profile" yaml:"profile"`
	Broker  BrokerConfig  `json:"broker" yaml:"broker"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

type AccountConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Currency string  `json:"currency" yaml:"currency"`
	Equity   float64 `json:"equity" yaml:"equity"`
}

// RiskConfig holds the calculator defaults the position dialog opens with.
type RiskConfig struct {
	DefaultAmount  float64            `json:"default_amount" yaml:"default_amount"`
	DefaultPercent float64            `json:"default_percent" yaml:"default_percent"`
	PipValues      map[string]float64 `json:"pip_values,omitempty" yaml:"pip_values,omitempty"`
	Policy         risk.Policy        `json:"policy" yaml:"policy"`
}

// PipValue returns a configured per-lot pip value for instrument, if any.
func (r RiskConfig) PipValue(instrument string) (float64, bool) {
	v, ok := r.PipValues[market.NormalizeSymbol(instrument)]
	return v, ok && v > 0
}

// normalizePipValues rewrites PipValues keys to canonical instrument names
// so "EURUSD" and "eur/usd" both land on EUR_USD.
func (r *RiskConfig) normalizePipValues() error {
	if len(r.PipValues) == 0 {
		return nil
	}
	out := make(map[string]float64, len(r.PipValues))
	for name, v := range r.PipValues {
		meta, err := market.Lookup(name)
		if err != nil {
			return fmt.Errorf("risk.pip_values: %w", err)
		}
		if prev, dup := out[meta.Name]; dup && prev != v {
			return fmt.Errorf("risk.pip_values: %s given twice with different values", meta.Name)
		}
		out[meta.Name] = v
	}
	r.PipValues = out
	return nil
}

// FillDefaults completes a calculator input from the account and risk
// defaults: equity when absent, and both the amount and percentage when
// neither was given.
func (c *Config) FillDefaults(in risk.Input) risk.Input {
	if in.Equity == 0 {
		in.Equity = c.Account.Equity
	}
	if in.RiskAmount == 0 && in.RiskPercent == 0 {
		in.RiskAmount = c.Risk.DefaultAmount
		in.RiskPercent = c.Risk.DefaultPercent
	}
	return in
}

// BrokerConfig tunes the simulated broker.
type BrokerConfig struct {
	SuccessRate  float64 `json:"success_rate" yaml:"success_rate"`
	TestDelay    string  `json:"test_delay" yaml:"test_delay"`       // e.g. "2s"
	TickInterval string  `json:"tick_interval" yaml:"tick_interval"` // e.g. "3s"
}

func (b BrokerConfig) TestDelayDuration() (time.Duration, error) {
	return parseDuration(b.TestDelay)
}

func (b BrokerConfig) TickIntervalDuration() (time.Duration, error) {
	return parseDuration(b.TickInterval)
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

type LogConfig struct {
	Level   string `json:"level" yaml:"level"`
	Console bool   `json:"console" yaml:"console"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load reads path (or starts from Default when path is empty), applies .env
// and FXDESK_* overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML or JSON). Fields
// missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads .env from the working directory when one exists.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from FXDESK_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("FXDESK_TIER"); ok && v != "" {
		t, err := tier.ParseTier(v)
		if err != nil {
			return fmt.Errorf("FXDESK_TIER: %w", err)
		}
		c.Profile.Tier = t
	}
	if v, ok := lookup("FXDESK_TRIAL_SESSIONS_USED"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FXDESK_TRIAL_SESSIONS_USED: %w", err)
		}
		c.Profile.TrialSessionsUsed = n
	}
	if v, ok := lookup("FXDESK_EQUITY"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FXDESK_EQUITY: %w", err)
		}
		c.Account.Equity = f
	}
	if v, ok := lookup("FXDESK_DB"); ok && v != "" {
		c.Journal.DBPath = v
		c.Journal.Enabled = true
	}
	if v, ok := lookup("FXDESK_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup("FXDESK_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	return nil
}

// Validate checks if the configuration is valid. Pip-value keys are
// rewritten to canonical instrument names on the way.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Equity <= 0 {
		return fmt.Errorf("account.equity must be positive")
	}
	if c.Risk.DefaultAmount < 0 {
		return fmt.Errorf("risk.default_amount must not be negative")
	}
	if c.Risk.DefaultPercent < 0 || c.Risk.DefaultPercent > 100 {
		return fmt.Errorf("risk.default_percent must be between 0 and 100")
	}
	if err := c.Risk.normalizePipValues(); err != nil {
		return err
	}
	for name, v := range c.Risk.PipValues {
		if v <= 0 {
			return fmt.Errorf("risk.pip_values[%s] must be positive", name)
		}
	}
	if c.Risk.Policy.MaxRiskPct < 0 || c.Risk.Policy.MaxRiskPct > 1 {
		return fmt.Errorf("risk.policy.max_risk_pct must be between 0 and 1")
	}
	if c.Risk.Policy.MinRR < 0 || c.Risk.Policy.MaxLots < 0 {
		return fmt.Errorf("risk.policy limits must not be negative")
	}
	if !c.Profile.Tier.Valid() {
		return fmt.Errorf("profile.tier: %w", tier.ErrUnknownTier)
	}
	if c.Profile.TrialSessionsUsed < 0 {
		return fmt.Errorf("profile.trial_sessions_used must not be negative")
	}
	if c.Broker.SuccessRate < 0 || c.Broker.SuccessRate > 1 {
		return fmt.Errorf("broker.success_rate must be between 0 and 1")
	}
	if _, err := c.Broker.TestDelayDuration(); err != nil {
		return fmt.Errorf("broker.test_delay: %w", err)
	}
	if d, err := c.Broker.TickIntervalDuration(); err != nil {
		return fmt.Errorf("broker.tick_interval: %w", err)
	} else if d < 0 {
		return fmt.Errorf("broker.tick_interval must not be negative")
	}
	if c.Journal.Enabled && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required when journal is enabled")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug|info|warn|error")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "DEMO-001",
			Currency: "USD",
			Equity:   50000,
		},
		Risk: RiskConfig{
			DefaultAmount:  500,
			DefaultPercent: 2,
			Policy:         risk.DefaultPolicy(),
		},
		Profile: tier.Profile{
			Tier: tier.Trial,
		},
		Broker: BrokerConfig{
			SuccessRate:  0.7,
			TestDelay:    "2s",
			TickInterval: "3s",
		},
		Journal: JournalConfig{
			Enabled: false,
			DBPath:  "./fxdesk.sqlite",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
