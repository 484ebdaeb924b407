package service

import "github.com/nulln0ne/dexter-estimator/pkg/dexter"

// ErrInvalidQuote matches every calculator rejection, whether the input was
// malformed or the pool cannot satisfy the trade.
var ErrInvalidQuote = dexter.ErrInvalidInput
