package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrInvalidDecimals is returned when decimals is not a non-negative integer.
var ErrInvalidDecimals = fiber.NewError(fiber.StatusBadRequest, "decimals must be an integer in [0, 255]")

// ErrQuoteFailedInternal signals a generic server-side quoting error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// NewAmountRequired returns a 400 Bad Request for a missing amount field.
func NewAmountRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidAmount wraps an amount parsing error into a 400 Bad Request with
// a descriptive message.
func NewInvalidAmount(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}

// NewQuoteRejected maps a calculator rejection to a 400 Bad Request. The
// calculator does not tell malformed input apart from trades the pool cannot
// satisfy, so neither does the response code.
func NewQuoteRejected(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "quote rejected: "+err.Error())
}
