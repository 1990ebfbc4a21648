package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/fxdesk/journal"
	"github.com/rustyeddy/fxdesk/metrics"
	"github.com/rustyeddy/fxdesk/tier"
)

type featuresResponse struct {
	Tier              tier.Tier      `json:"tier"`
	TrialExpired      bool           `json:"trialExpired"`
	TrialSessionsLeft int            `json:"trialSessionsLeft"`
	Features          []tier.Feature `json:"features"`
}

type featureResponse struct {
	Feature tier.Feature `json:"feature"`
	Tier    tier.Tier    `json:"tier"`
	Enabled bool         `json:"enabled"`
}

// profile is the configured profile, or a fresh one for ?tier= when given.
func (s *Server) profile(c echo.Context) (tier.Profile, error) {
	name := c.QueryParam("tier")
	if name == "" {
		return s.cfg.Profile, nil
	}
	t, err := tier.ParseTier(name)
	if err != nil {
		return tier.Profile{}, err
	}
	return tier.Profile{Tier: t}, nil
}

func (s *Server) handleFeatures(c echo.Context) error {
	p, err := s.profile(c)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}

	enabled := []tier.Feature{}
	for _, f := range tier.Features() {
		if p.Allows(f) {
			enabled = append(enabled, f)
		}
	}

	return SuccessResponse(c, featuresResponse{
		Tier:              p.Tier,
		TrialExpired:      p.TrialExpired(),
		TrialSessionsLeft: p.TrialSessionsLeft(),
		Features:          enabled,
	})
}

func (s *Server) handleFeature(c echo.Context) error {
	p, err := s.profile(c)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}

	f := tier.Feature(c.Param("feature"))
	ok := p.Allows(f)
	metrics.ObserveGateCheck(f, ok)

	if s.journal != nil {
		err := s.journal.RecordGateCheck(journal.GateCheck{
			Tier:    p.Tier.String(),
			Feature: string(f),
			Enabled: ok,
		})
		if err != nil {
			log.Error().Err(err).Msg("journal gate check")
		}
	}

	return SuccessResponse(c, featureResponse{Feature: f, Tier: p.Tier, Enabled: ok})
}
