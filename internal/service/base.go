// Package service composes calculator results into the quotes served by the
// HTTP handlers.
package service

import (
	"log/slog"

	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger   *slog.Logger
	exchange dexter.Exchange
}
