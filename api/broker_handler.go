package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rustyeddy/fxdesk/broker"
	"github.com/rustyeddy/fxdesk/metrics"
)

func (s *Server) handleAccount(c echo.Context) error {
	acct, err := s.broker.GetAccount(c.Request().Context())
	if err != nil {
		return err
	}
	return SuccessResponse(c, acct)
}

func (s *Server) handlePositions(c echo.Context) error {
	ps, err := s.broker.Positions(c.Request().Context())
	if err != nil {
		return err
	}
	return SuccessResponse(c, ps)
}

func (s *Server) handleConnectionTest(c echo.Context) error {
	var creds broker.Credentials
	if err := c.Bind(&creds); err != nil {
		return BadRequestResponse(c, "invalid request body")
	}

	sess, err := s.broker.TestConnection(c.Request().Context(), creds)
	switch {
	case err == nil:
		metrics.ObserveConnectionTest(true)
		return SuccessMessageResponse(c, "Connection successful! Account verified.", sess)
	case errors.Is(err, broker.ErrMissingCredentials):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorResponse(c, http.StatusGatewayTimeout, "connection test cancelled", nil)
	default:
		metrics.ObserveConnectionTest(false)
		return ErrorResponse(c, http.StatusBadGateway, err.Error(), nil)
	}
}
