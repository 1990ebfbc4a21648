package market

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// StandardLot is the number of base-currency units in one lot.
const StandardLot = 100_000.0

type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	PipLocation   int
	LotUnits      float64
}

// PipSize is the price increment of one pip, 10^PipLocation.
func (m InstrumentMeta) PipSize() float64 {
	return math.Pow(10, float64(m.PipLocation))
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {
		Name:          "EUR_USD",
		BaseCurrency:  "EUR",
		QuoteCurrency: "USD",
		PipLocation:   -4,
		LotUnits:      StandardLot,
	},
	"GBP_USD": {
		Name:          "GBP_USD",
		BaseCurrency:  "GBP",
		QuoteCurrency: "USD",
		PipLocation:   -4,
		LotUnits:      StandardLot,
	},
	"AUD_USD": {
		Name:          "AUD_USD",
		BaseCurrency:  "AUD",
		QuoteCurrency: "USD",
		PipLocation:   -4,
		LotUnits:      StandardLot,
	},
	"USD_JPY": {
		Name:          "USD_JPY",
		BaseCurrency:  "USD",
		QuoteCurrency: "JPY",
		PipLocation:   -2,
		LotUnits:      StandardLot,
	},
	"USD_CHF": {
		Name:          "USD_CHF",
		BaseCurrency:  "USD",
		QuoteCurrency: "CHF",
		PipLocation:   -4,
		LotUnits:      StandardLot,
	},
	// Gold trades 100 oz per lot; brokers quote the pip at 0.1.
	"XAU_USD": {
		Name:          "XAU_USD",
		BaseCurrency:  "XAU",
		QuoteCurrency: "USD",
		PipLocation:   -1,
		LotUnits:      100,
	},
}

// NormalizeSymbol maps the forms a dashboard or MT5 terminal uses
// ("EURUSD", "eur/usd", "EUR_USD") onto the instrument table key.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.NewReplacer("/", "", "_", "", "-", "").Replace(s)
	if len(s) != 6 {
		return s
	}
	return s[:3] + "_" + s[3:]
}

// Lookup resolves symbol in any accepted spelling.
func Lookup(symbol string) (InstrumentMeta, error) {
	name := NormalizeSymbol(symbol)
	meta, ok := Instruments[name]
	if !ok {
		return InstrumentMeta{}, fmt.Errorf("unknown instrument %s", symbol)
	}
	return meta, nil
}

// Names returns the known instrument names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Instruments))
	for k := range Instruments {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
