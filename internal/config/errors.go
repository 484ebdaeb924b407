package config

import "errors"

var (
	// ErrUnknownExchangeKind indicates that EXCHANGE_KIND names no known preset.
	ErrUnknownExchangeKind = errors.New("unknown EXCHANGE_KIND")

	// ErrInvalidFeePercent indicates that FEE_PERCENT is not a percent in [0, 100].
	ErrInvalidFeePercent = errors.New("invalid FEE_PERCENT")

	// ErrInvalidBurnPercent indicates that BURN_PERCENT is not a percent in [0, 100].
	ErrInvalidBurnPercent = errors.New("invalid BURN_PERCENT")

	// ErrInvalidCreditSubsidy indicates that CREDIT_SUBSIDY is not a boolean.
	ErrInvalidCreditSubsidy = errors.New("invalid CREDIT_SUBSIDY")
)
