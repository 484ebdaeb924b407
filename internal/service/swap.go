package service

import (
	"fmt"
	"log/slog"

	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
)

// Trade directions reported in quotes.
const (
	DirectionXtzToToken = "xtz_to_token"
	DirectionTokenToXtz = "token_to_xtz"
)

// QuoteService quotes swaps and liquidity operations against a single
// exchange configuration.
type QuoteService struct {
	BaseService
}

// NewQuoteService constructs a QuoteService bound to exchange.
func NewQuoteService(logger *slog.Logger, exchange dexter.Exchange) *QuoteService {
	return &QuoteService{
		BaseService: BaseService{logger: logger, exchange: exchange},
	}
}

// Exchange returns the configuration every quote is computed with.
func (s *QuoteService) Exchange() dexter.Exchange {
	return s.exchange
}

// SwapRequest describes a trade of AmountIn against the given reserves.
type SwapRequest struct {
	AmountIn  dexter.Amount
	XtzPool   dexter.Amount
	TokenPool dexter.Amount
	Decimals  int
	Slippage  dexter.Amount
}

// SwapQuote is everything a wallet needs to present and submit a swap.
type SwapQuote struct {
	Direction            string        `json:"direction"`
	AmountIn             dexter.Amount `json:"amount_in"`
	AmountOut            dexter.Amount `json:"amount_out"`
	MinimumOut           dexter.Amount `json:"minimum_out"`
	ExchangeRate         dexter.Amount `json:"exchange_rate"`
	DisplayRate          dexter.Amount `json:"display_rate"`
	MarketRate           dexter.Amount `json:"market_rate"`
	PriceImpact          dexter.Amount `json:"price_impact"`
	LiquidityProviderFee dexter.Amount `json:"liquidity_provider_fee"`
}

// XtzToToken quotes selling AmountIn mutez for tokens.
func (s *QuoteService) XtzToToken(req SwapRequest) (*SwapQuote, error) {
	e := s.exchange
	s.logger.Debug("quoting swap", "direction", DirectionXtzToToken, "in", req.AmountIn, "xtz_pool", req.XtzPool, "token_pool", req.TokenPool)

	out, err := e.XtzToTokenTokenOutput(req.AmountIn, req.XtzPool, req.TokenPool)
	if err != nil {
		return nil, s.reject("token output", err)
	}
	// The contract transfers whole units.
	out = out.Floor()
	q := &SwapQuote{Direction: DirectionXtzToToken, AmountIn: req.AmountIn, AmountOut: out}

	steps := []struct {
		name string
		dst  *dexter.Amount
		f    func() (dexter.Amount, error)
	}{
		{"minimum output", &q.MinimumOut, func() (dexter.Amount, error) {
			return e.XtzToTokenMinimumTokenOutput(out, req.Slippage)
		}},
		{"exchange rate", &q.ExchangeRate, func() (dexter.Amount, error) {
			return e.XtzToTokenExchangeRate(req.AmountIn, req.XtzPool, req.TokenPool)
		}},
		{"display rate", &q.DisplayRate, func() (dexter.Amount, error) {
			return e.XtzToTokenExchangeRateForDisplay(req.AmountIn, req.XtzPool, req.TokenPool, req.Decimals)
		}},
		{"market rate", &q.MarketRate, func() (dexter.Amount, error) {
			return e.XtzToTokenMarketRate(req.XtzPool, req.TokenPool, req.Decimals)
		}},
		{"price impact", &q.PriceImpact, func() (dexter.Amount, error) {
			return e.XtzToTokenPriceImpact(req.AmountIn, req.XtzPool, req.TokenPool)
		}},
		{"liquidity provider fee", &q.LiquidityProviderFee, func() (dexter.Amount, error) {
			return dexter.TotalLiquidityProviderFee(req.AmountIn)
		}},
	}
	for _, st := range steps {
		v, err := st.f()
		if err != nil {
			return nil, s.reject(st.name, err)
		}
		*st.dst = v
	}

	s.logger.Debug("swap quoted", "direction", q.Direction, "out", q.AmountOut, "min", q.MinimumOut, "impact", q.PriceImpact)
	return q, nil
}

// TokenToXtz quotes selling AmountIn tokens for mutez.
func (s *QuoteService) TokenToXtz(req SwapRequest) (*SwapQuote, error) {
	e := s.exchange
	s.logger.Debug("quoting swap", "direction", DirectionTokenToXtz, "in", req.AmountIn, "xtz_pool", req.XtzPool, "token_pool", req.TokenPool)

	out, err := e.TokenToXtzXtzOutput(req.AmountIn, req.XtzPool, req.TokenPool)
	if err != nil {
		return nil, s.reject("xtz output", err)
	}
	out = out.Floor()
	q := &SwapQuote{Direction: DirectionTokenToXtz, AmountIn: req.AmountIn, AmountOut: out}

	steps := []struct {
		name string
		dst  *dexter.Amount
		f    func() (dexter.Amount, error)
	}{
		{"minimum output", &q.MinimumOut, func() (dexter.Amount, error) {
			return e.TokenToXtzMinimumXtzOutput(out, req.Slippage)
		}},
		{"exchange rate", &q.ExchangeRate, func() (dexter.Amount, error) {
			return e.TokenToXtzExchangeRate(req.AmountIn, req.XtzPool, req.TokenPool)
		}},
		{"display rate", &q.DisplayRate, func() (dexter.Amount, error) {
			return e.TokenToXtzExchangeRateForDisplay(req.AmountIn, req.XtzPool, req.TokenPool, req.Decimals)
		}},
		{"market rate", &q.MarketRate, func() (dexter.Amount, error) {
			return e.TokenToXtzMarketRate(req.XtzPool, req.TokenPool, req.Decimals)
		}},
		{"price impact", &q.PriceImpact, func() (dexter.Amount, error) {
			return e.TokenToXtzPriceImpact(req.AmountIn, req.XtzPool, req.TokenPool)
		}},
		// On this side the XTZ leg is the output.
		{"liquidity provider fee", &q.LiquidityProviderFee, func() (dexter.Amount, error) {
			return dexter.TotalLiquidityProviderFee(out)
		}},
	}
	for _, st := range steps {
		v, err := st.f()
		if err != nil {
			return nil, s.reject(st.name, err)
		}
		*st.dst = v
	}

	s.logger.Debug("swap quoted", "direction", q.Direction, "out", q.AmountOut, "min", q.MinimumOut, "impact", q.PriceImpact)
	return q, nil
}

// InputRequest asks what must be sold to receive AmountOut.
type InputRequest struct {
	AmountOut dexter.Amount
	XtzPool   dexter.Amount
	TokenPool dexter.Amount
	Decimals  int
}

// InputQuote is the answer to an InputRequest.
type InputQuote struct {
	Direction string        `json:"direction"`
	AmountOut dexter.Amount `json:"amount_out"`
	AmountIn  dexter.Amount `json:"amount_in"`
}

// XtzToTokenInput returns the mutez to sell for AmountOut tokens.
func (s *QuoteService) XtzToTokenInput(req InputRequest) (*InputQuote, error) {
	in, err := s.exchange.XtzToTokenXtzInput(req.AmountOut, req.XtzPool, req.TokenPool, req.Decimals)
	if err != nil {
		return nil, s.reject("xtz input", err)
	}
	// Selling less than this would fall short of the requested output.
	in = in.Ceil()
	s.logger.Debug("input quoted", "direction", DirectionXtzToToken, "out", req.AmountOut, "in", in)
	return &InputQuote{Direction: DirectionXtzToToken, AmountOut: req.AmountOut, AmountIn: in}, nil
}

// TokenToXtzInput returns the tokens to sell for AmountOut mutez.
func (s *QuoteService) TokenToXtzInput(req InputRequest) (*InputQuote, error) {
	in, err := s.exchange.TokenToXtzTokenInput(req.AmountOut, req.XtzPool, req.TokenPool, req.Decimals)
	if err != nil {
		return nil, s.reject("token input", err)
	}
	in = in.Ceil()
	s.logger.Debug("input quoted", "direction", DirectionTokenToXtz, "out", req.AmountOut, "in", in)
	return &InputQuote{Direction: DirectionTokenToXtz, AmountOut: req.AmountOut, AmountIn: in}, nil
}

func (s *QuoteService) reject(step string, err error) error {
	s.logger.Warn("quote rejected", "step", step, "err", err)
	return fmt.Errorf("%s: %w", step, err)
}
