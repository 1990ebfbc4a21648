package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/fxdesk/journal"
	"github.com/rustyeddy/fxdesk/market"
	"github.com/rustyeddy/fxdesk/metrics"
	"github.com/rustyeddy/fxdesk/risk"
	"github.com/rustyeddy/fxdesk/tier"
)

type calcRequest struct {
	risk.Input
	Instrument string `json:"instrument,omitempty"`
	PositionID string `json:"positionId,omitempty"`
}

type calcResponse struct {
	Instrument string          `json:"instrument,omitempty"`
	Input      risk.Input      `json:"input"`
	Result     risk.Result     `json:"result"`
	Assessment risk.Assessment `json:"assessment"`
}

func (s *Server) handleCalc(c echo.Context) error {
	if !s.cfg.Profile.Allows(tier.PositionHelpers) {
		return ForbiddenResponse(c, "position helpers are not available on this plan")
	}

	var req calcRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()
	in := req.Input
	instrument := req.Instrument

	var pos *market.Position
	if req.PositionID != "" {
		ps, err := s.broker.Positions(ctx)
		if err != nil {
			return err
		}
		for i := range ps {
			if ps[i].ID == req.PositionID {
				pos = &ps[i]
				break
			}
		}
		if pos == nil {
			return NotFoundResponse(c, fmt.Sprintf("position %s not found", req.PositionID))
		}
		instrument = pos.Symbol
	}

	if instrument != "" {
		meta, err := market.Lookup(instrument)
		if err != nil {
			return BadRequestResponse(c, err.Error())
		}
		instrument = meta.Name
		if in.PipSize == 0 {
			in.PipSize = meta.PipSize()
		}
		if in.PipValuePerLot == 0 {
			in.PipValuePerLot = s.pipValue(ctx, meta.Name)
		}
	}

	in = s.cfg.FillDefaults(in)

	if pos != nil {
		in = in.WithPosition(*pos)
	}
	res := risk.Calculate(in)

	metrics.ObserveCalculation()
	if res.RecommendedLotSize == 0 {
		metrics.ObserveGuarded(guardReason(in, res))
	}

	if s.journal != nil {
		err := s.journal.RecordCalculation(journal.CalculationRecord{
			Instrument:     instrument,
			Entry:          in.Entry,
			StopLoss:       in.StopLoss,
			TakeProfit:     in.TakeProfit,
			RiskAmount:     res.RiskAmount,
			PipValuePerLot: in.PipValuePerLot,
			StopLossPips:   res.StopLossPips,
			RiskReward:     res.RiskRewardRatio,
			LotSize:        res.RecommendedLotSize,
		})
		if err != nil {
			log.Error().Err(err).Msg("journal calculation")
		}
	}

	return SuccessResponse(c, calcResponse{
		Instrument: instrument,
		Input:      in,
		Result:     res,
		Assessment: risk.Assess(s.cfg.Risk.Policy, in, res),
	})
}

// pipValue prefers a configured value and falls back to deriving it from
// the broker's prices. 0 means unknown; the calculator then sizes to 0.
func (s *Server) pipValue(ctx context.Context, instrument string) float64 {
	if v, ok := s.cfg.Risk.PipValue(instrument); ok {
		return v
	}
	v, err := market.PipValuePerLot(ctx, instrument, s.cfg.Account.Currency, s.broker)
	if err != nil {
		log.Warn().Err(err).Str("instrument", instrument).Msg("pip value unavailable")
		return 0
	}
	return v
}

func guardReason(in risk.Input, res risk.Result) string {
	switch {
	case res.StopLossPips == 0:
		return "no_stop"
	case in.PipValuePerLot <= 0:
		return "no_pip_value"
	default:
		return "no_risk"
	}
}
