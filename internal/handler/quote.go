package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/nulln0ne/dexter-estimator/internal/service"
	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

// DefaultSlippage is used when a swap request names no slippage tolerance.
var DefaultSlippage = dexter.MustAmount("0.005")

type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type SwapRequest struct {
	AmountIn  string `query:"amount_in" json:"amount_in"`
	XtzPool   string `query:"xtz_pool" json:"xtz_pool"`
	TokenPool string `query:"token_pool" json:"token_pool"`
	Decimals  string `query:"decimals" json:"decimals"`
	Slippage  string `query:"slippage" json:"slippage"`
}

type InputRequest struct {
	AmountOut string `query:"amount_out" json:"amount_out"`
	XtzPool   string `query:"xtz_pool" json:"xtz_pool"`
	TokenPool string `query:"token_pool" json:"token_pool"`
	Decimals  string `query:"decimals" json:"decimals"`
}

// XtzToToken serves GET /quote/xtz-to-token.
func (h *QuoteHandler) XtzToToken() fiber.Handler {
	return h.swap(h.service.XtzToToken)
}

// TokenToXtz serves GET /quote/token-to-xtz.
func (h *QuoteHandler) TokenToXtz() fiber.Handler {
	return h.swap(h.service.TokenToXtz)
}

// XtzToTokenInput serves GET /quote/xtz-to-token/input.
func (h *QuoteHandler) XtzToTokenInput() fiber.Handler {
	return h.input(h.service.XtzToTokenInput)
}

// TokenToXtzInput serves GET /quote/token-to-xtz/input.
func (h *QuoteHandler) TokenToXtzInput() fiber.Handler {
	return h.input(h.service.TokenToXtzInput)
}

func (h *QuoteHandler) swap(quote func(service.SwapRequest) (*service.SwapQuote, error)) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req SwapRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		sreq, err := h.parseSwapRequest(&req)
		if err != nil {
			return err
		}

		q, err := quote(sreq)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(q)
	}
}

func (h *QuoteHandler) parseSwapRequest(req *SwapRequest) (service.SwapRequest, error) {
	var (
		out service.SwapRequest
		err error
	)
	if out.AmountIn, err = h.parseAmount("amount_in", req.AmountIn); err != nil {
		return out, err
	}
	if out.XtzPool, err = h.parseAmount("xtz_pool", req.XtzPool); err != nil {
		return out, err
	}
	if out.TokenPool, err = h.parseAmount("token_pool", req.TokenPool); err != nil {
		return out, err
	}
	if out.Decimals, err = h.parseDecimals(req.Decimals); err != nil {
		return out, err
	}
	if out.Slippage, err = h.parseOptionalAmount("slippage", req.Slippage, DefaultSlippage); err != nil {
		return out, err
	}
	return out, nil
}

func (h *QuoteHandler) input(quote func(service.InputRequest) (*service.InputQuote, error)) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req InputRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		var (
			ireq service.InputRequest
			err  error
		)
		if ireq.AmountOut, err = h.parseAmount("amount_out", req.AmountOut); err != nil {
			return err
		}
		if ireq.XtzPool, err = h.parseAmount("xtz_pool", req.XtzPool); err != nil {
			return err
		}
		if ireq.TokenPool, err = h.parseAmount("token_pool", req.TokenPool); err != nil {
			return err
		}
		if ireq.Decimals, err = h.parseDecimals(req.Decimals); err != nil {
			return err
		}

		q, err := quote(ireq)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(q)
	}
}
