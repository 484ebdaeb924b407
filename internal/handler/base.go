// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nulln0ne/dexter-estimator/internal/service"
	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

// parseAmount parses a required amount query parameter.
func (h *BaseHandler) parseAmount(field, value string) (dexter.Amount, error) {
	if strings.TrimSpace(value) == "" {
		return dexter.Amount{}, NewAmountRequired(field)
	}
	amount, err := dexter.ParseAmount(value)
	if err != nil {
		h.logger.Debug("failed to parse amount", "field", field, "value", value, "err", err)
		return dexter.Amount{}, NewInvalidAmount(field, err)
	}
	return amount, nil
}

// parseOptionalAmount parses an amount query parameter, using def when it is
// absent.
func (h *BaseHandler) parseOptionalAmount(field, value string, def dexter.Amount) (dexter.Amount, error) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	return h.parseAmount(field, value)
}

// parseDecimals parses the token decimals, defaulting to 0.
func (h *BaseHandler) parseDecimals(value string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	d, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || d < 0 || d > dexter.MaxDecimals {
		return 0, ErrInvalidDecimals
	}
	return d, nil
}

func (h *BaseHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuote):
		return NewQuoteRejected(err)
	default:
		h.logger.Error("service quote failed", "err", err)
		return ErrQuoteFailedInternal
	}
}
