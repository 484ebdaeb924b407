package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/nulln0ne/dexter-estimator/internal/service"
	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

type LiquidityHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewLiquidityHandler(logger *slog.Logger, svc *service.QuoteService) *LiquidityHandler {
	return &LiquidityHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type AddLiquidityRequest struct {
	XtzIn          string `query:"xtz_in" json:"xtz_in"`
	XtzPool        string `query:"xtz_pool" json:"xtz_pool"`
	TokenPool      string `query:"token_pool" json:"token_pool"`
	TotalLiquidity string `query:"total_liquidity" json:"total_liquidity"`
}

type TokenDepositRequest struct {
	TokenIn   string `query:"token_in" json:"token_in"`
	XtzPool   string `query:"xtz_pool" json:"xtz_pool"`
	TokenPool string `query:"token_pool" json:"token_pool"`
}

type RemoveLiquidityRequest struct {
	LiquidityBurned string `query:"liquidity_burned" json:"liquidity_burned"`
	TotalLiquidity  string `query:"total_liquidity" json:"total_liquidity"`
	XtzPool         string `query:"xtz_pool" json:"xtz_pool"`
	TokenPool       string `query:"token_pool" json:"token_pool"`
	TradeVolume     string `query:"trade_volume" json:"trade_volume"`
}

// Add serves GET /liquidity/add.
func (h *LiquidityHandler) Add() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req AddLiquidityRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		var (
			areq service.AddLiquidityRequest
			err  error
		)
		if areq.XtzIn, err = h.parseAmount("xtz_in", req.XtzIn); err != nil {
			return err
		}
		if areq.TotalLiquidity, err = h.parseAmount("total_liquidity", req.TotalLiquidity); err != nil {
			return err
		}
		// An empty pool may be quoted without reserves.
		if areq.XtzPool, err = h.parseOptionalAmount("xtz_pool", req.XtzPool, dexter.Amount{}); err != nil {
			return err
		}
		if areq.TokenPool, err = h.parseOptionalAmount("token_pool", req.TokenPool, dexter.Amount{}); err != nil {
			return err
		}

		q, err := h.service.AddLiquidity(areq)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(q)
	}
}

// AddXtzIn serves GET /liquidity/add/xtz-in.
func (h *LiquidityHandler) AddXtzIn() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req TokenDepositRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		var (
			treq service.TokenDepositRequest
			err  error
		)
		if treq.TokenIn, err = h.parseAmount("token_in", req.TokenIn); err != nil {
			return err
		}
		if treq.XtzPool, err = h.parseAmount("xtz_pool", req.XtzPool); err != nil {
			return err
		}
		if treq.TokenPool, err = h.parseAmount("token_pool", req.TokenPool); err != nil {
			return err
		}

		xtzIn, err := h.service.XtzForTokenDeposit(treq)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(fiber.Map{"token_in": treq.TokenIn, "xtz_in": xtzIn})
	}
}

// Remove serves GET /liquidity/remove.
func (h *LiquidityHandler) Remove() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req RemoveLiquidityRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		var (
			rreq service.RemoveLiquidityRequest
			err  error
		)
		if rreq.LiquidityBurned, err = h.parseAmount("liquidity_burned", req.LiquidityBurned); err != nil {
			return err
		}
		if rreq.TotalLiquidity, err = h.parseAmount("total_liquidity", req.TotalLiquidity); err != nil {
			return err
		}
		if rreq.XtzPool, err = h.parseAmount("xtz_pool", req.XtzPool); err != nil {
			return err
		}
		if rreq.TokenPool, err = h.parseAmount("token_pool", req.TokenPool); err != nil {
			return err
		}
		if rreq.TradeVolume, err = h.parseOptionalAmount("trade_volume", req.TradeVolume, dexter.Amount{}); err != nil {
			return err
		}

		q, err := h.service.RemoveLiquidity(rreq)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(q)
	}
}
