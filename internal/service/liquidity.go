package service

import (
	"fmt"

	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

// AddLiquidityRequest describes an XTZ deposit into a pool.
type AddLiquidityRequest struct {
	XtzIn          dexter.Amount
	XtzPool        dexter.Amount
	TokenPool      dexter.Amount
	TotalLiquidity dexter.Amount
}

// AddLiquidityQuote is the token deposit required alongside XtzIn and the
// liquidity it mints.
type AddLiquidityQuote struct {
	XtzIn            dexter.Amount `json:"xtz_in"`
	TokenIn          dexter.Amount `json:"token_in"`
	LiquidityCreated dexter.Amount `json:"liquidity_created"`
	Bootstrap        bool          `json:"bootstrap"`
}

// AddLiquidity quotes a deposit. A pool with no liquidity outstanding is
// bootstrapped: the token deposit is whatever the caller brings, so only the
// minted liquidity is quoted.
func (s *QuoteService) AddLiquidity(req AddLiquidityRequest) (*AddLiquidityQuote, error) {
	s.logger.Debug("quoting deposit", "xtz_in", req.XtzIn, "xtz_pool", req.XtzPool, "token_pool", req.TokenPool, "total_liquidity", req.TotalLiquidity)

	if req.TotalLiquidity.Sign() == 0 {
		// Reserves next to zero liquidity mean a stale or partial pool read;
		// minting 1:1 against it would be wrong.
		if req.XtzPool.Sign() != 0 || req.TokenPool.Sign() != 0 {
			return nil, s.reject("initial liquidity", fmt.Errorf("%w: pool holds reserves but no liquidity", ErrInvalidQuote))
		}
		minted, err := dexter.InitialLiquidity(req.XtzIn)
		if err != nil {
			return nil, s.reject("initial liquidity", err)
		}
		return &AddLiquidityQuote{XtzIn: req.XtzIn, LiquidityCreated: minted, Bootstrap: true}, nil
	}

	tokenIn, err := s.exchange.AddLiquidityTokenIn(req.XtzIn, req.XtzPool, req.TokenPool)
	if err != nil {
		return nil, s.reject("token in", err)
	}
	minted, err := s.exchange.AddLiquidityLiquidityCreated(req.XtzIn, req.XtzPool, req.TotalLiquidity)
	if err != nil {
		return nil, s.reject("liquidity created", err)
	}
	// Liquidity tokens are whole units on chain.
	minted = minted.Floor()

	s.logger.Debug("deposit quoted", "token_in", tokenIn, "minted", minted)
	return &AddLiquidityQuote{XtzIn: req.XtzIn, TokenIn: tokenIn, LiquidityCreated: minted}, nil
}

// TokenDepositRequest asks how much XTZ must accompany a token deposit.
type TokenDepositRequest struct {
	TokenIn   dexter.Amount
	XtzPool   dexter.Amount
	TokenPool dexter.Amount
}

// XtzForTokenDeposit returns the mutez to pair with TokenIn.
func (s *QuoteService) XtzForTokenDeposit(req TokenDepositRequest) (dexter.Amount, error) {
	xtzIn, err := s.exchange.AddLiquidityXtzIn(req.TokenIn, req.XtzPool, req.TokenPool)
	if err != nil {
		return dexter.Amount{}, s.reject("xtz in", err)
	}
	return xtzIn, nil
}

// RemoveLiquidityRequest describes burning LiquidityBurned. TradeVolume, when
// positive, also asks for the holder's share of the fees on that much XTZ
// volume.
type RemoveLiquidityRequest struct {
	LiquidityBurned dexter.Amount
	TotalLiquidity  dexter.Amount
	XtzPool         dexter.Amount
	TokenPool       dexter.Amount
	TradeVolume     dexter.Amount
}

// RemoveLiquidityQuote is what a withdrawal pays out.
type RemoveLiquidityQuote struct {
	LiquidityBurned dexter.Amount  `json:"liquidity_burned"`
	XtzOut          dexter.Amount  `json:"xtz_out"`
	TokenOut        dexter.Amount  `json:"token_out"`
	FeeShare        *dexter.Amount `json:"fee_share,omitempty"`
}

// RemoveLiquidity quotes a withdrawal, floored to what the contract pays.
func (s *QuoteService) RemoveLiquidity(req RemoveLiquidityRequest) (*RemoveLiquidityQuote, error) {
	s.logger.Debug("quoting withdrawal", "burned", req.LiquidityBurned, "total_liquidity", req.TotalLiquidity, "xtz_pool", req.XtzPool, "token_pool", req.TokenPool)

	if req.LiquidityBurned.Cmp(req.TotalLiquidity) > 0 {
		return nil, s.reject("liquidity burned", fmt.Errorf("%w: burning %s of %s outstanding", ErrInvalidQuote, req.LiquidityBurned, req.TotalLiquidity))
	}

	xtzOut, err := s.exchange.RemoveLiquidityXtzOut(req.LiquidityBurned, req.TotalLiquidity, req.XtzPool)
	if err != nil {
		return nil, s.reject("xtz out", err)
	}
	tokenOut, err := s.exchange.RemoveLiquidityTokenOut(req.LiquidityBurned, req.TotalLiquidity, req.TokenPool)
	if err != nil {
		return nil, s.reject("token out", err)
	}
	q := &RemoveLiquidityQuote{
		LiquidityBurned: req.LiquidityBurned,
		XtzOut:          xtzOut.Floor(),
		TokenOut:        tokenOut.Floor(),
	}

	if req.TradeVolume.Sign() > 0 {
		share, err := dexter.LiquidityProviderFee(req.TradeVolume, req.TotalLiquidity, req.LiquidityBurned)
		if err != nil {
			return nil, s.reject("fee share", err)
		}
		q.FeeShare = &share
	}

	s.logger.Debug("withdrawal quoted", "xtz_out", q.XtzOut, "token_out", q.TokenOut)
	return q, nil
}
