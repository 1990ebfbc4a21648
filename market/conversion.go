package market

import (
	"context"
	"fmt"
)

func QuoteToAccountRate(ctx context.Context,
	instrument string,
	accountCurrency string,
	prices TickSource) (float64, error) {

	meta, err := Lookup(instrument)
	if err != nil {
		return 0, err
	}

	// EUR_USD, GBP_USD, XAU_USD in a USD account
	if meta.QuoteCurrency == accountCurrency {
		return 1.0, nil
	}

	// USD_JPY, USD_CHF in a USD account: invert the mid
	if meta.BaseCurrency == accountCurrency {
		px, err := prices.GetTick(ctx, meta.Name)
		if err != nil {
			return 0, err
		}
		mid := px.Mid()
		if mid <= 0 {
			return 0, fmt.Errorf("invalid mid price %v for %s", mid, meta.Name)
		}
		return 1.0 / mid, nil
	}

	return 0, fmt.Errorf(
		"cross conversion not implemented for %s → %s",
		meta.QuoteCurrency,
		accountCurrency,
	)
}

// PipValuePerLot is the account-currency value of a one pip move on one
// lot of instrument.
func PipValuePerLot(ctx context.Context,
	instrument string,
	accountCurrency string,
	prices TickSource) (float64, error) {

	meta, err := Lookup(instrument)
	if err != nil {
		return 0, err
	}
	rate, err := QuoteToAccountRate(ctx, meta.Name, accountCurrency, prices)
	if err != nil {
		return 0, err
	}
	return meta.PipSize() * meta.LotUnits * rate, nil
}
