package dexter

// XtzToTokenTokenOutput returns the tokens bought by selling xtzIn mutez.
// The result is exact; floor it to get what the contract would transfer.
func (e Exchange) XtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool Amount) (Amount, error) {
	return e.xtzToTokenTokenOutput(xtzIn, e.creditSubsidy(xtzPool), tokenPool)
}

func (e Exchange) xtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool Amount) (Amount, error) {
	if !allPositive(xtzIn, xtzPool, tokenPool) {
		return Amount{}, invalidf("xtz in, xtz pool and token pool must be positive")
	}
	m := e.FeeMultiplier()
	// (xtzIn * tokenPool * fee * burn) / (xtzPool * 1000000 + xtzIn * fee * burn)
	numerator := xtzIn.mul(tokenPool).mulInt(m)
	denominator := xtzPool.mulInt(multiplierScale).add(xtzIn.mulInt(m))
	return numerator.quo(denominator), nil
}

// XtzToTokenXtzInput returns the mutez that must be sold to buy tokenOut.
// It fails when tokenOut cannot be bought from tokenPool.
func (e Exchange) XtzToTokenXtzInput(tokenOut, xtzPool, tokenPool Amount, decimals int) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(tokenOut, xtzPool, tokenPool) {
		return Amount{}, invalidf("token out, xtz pool and token pool must be positive")
	}
	if err := validDecimals(decimals); err != nil {
		return Amount{}, err
	}
	// (xtzPool * tokenOut * 1000000) / ((tokenPool - tokenOut) * fee * burn)
	numerator := xtzPool.mul(tokenOut).mulInt(multiplierScale)
	denominator := tokenPool.sub(tokenOut).mulInt(e.FeeMultiplier())
	if isNonPositive(denominator) {
		return Amount{}, invalidf("token out %s exceeds what the pool can provide", tokenOut)
	}
	result := numerator.quo(denominator)
	if !isPositive(result) {
		return Amount{}, invalidf("no positive xtz input buys %s tokens", tokenOut)
	}
	return result, nil
}

// XtzToTokenExchangeRate returns tokens received per mutez sold, fees
// included.
func (e Exchange) XtzToTokenExchangeRate(xtzIn, xtzPool, tokenPool Amount) (Amount, error) {
	out, err := e.xtzToTokenTokenOutput(xtzIn, e.creditSubsidy(xtzPool), tokenPool)
	if err != nil {
		return Amount{}, err
	}
	return out.quo(xtzIn), nil
}

// XtzToTokenExchangeRateForDisplay is XtzToTokenExchangeRate in whole tokens
// per XTZ.
func (e Exchange) XtzToTokenExchangeRateForDisplay(xtzIn, xtzPool, tokenPool Amount, decimals int) (Amount, error) {
	if err := validDecimals(decimals); err != nil {
		return Amount{}, err
	}
	out, err := e.xtzToTokenTokenOutput(xtzIn, e.creditSubsidy(xtzPool), tokenPool)
	if err != nil {
		return Amount{}, err
	}
	// (out * 10^-decimals) / (xtzIn * 10^-6)
	return out.mul(pow10(XtzDecimals)).quo(xtzIn.mul(pow10(decimals))), nil
}

// XtzToTokenMarketRate returns the fee-free reserve ratio in whole tokens per
// XTZ. It is meant for display before a trade amount is known.
func (e Exchange) XtzToTokenMarketRate(xtzPool, tokenPool Amount, decimals int) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(xtzPool, tokenPool) {
		return Amount{}, invalidf("xtz pool and token pool must be positive")
	}
	if err := validDecimals(decimals); err != nil {
		return Amount{}, err
	}
	tokens := tokenPool.quo(pow10(decimals))
	xtz := xtzPool.quo(pow10(XtzDecimals))
	return tokens.quo(xtz), nil
}

// XtzToTokenPriceImpact returns the fraction by which selling xtzIn moves the
// realised price away from the reserve ratio, in [0, 1).
func (e Exchange) XtzToTokenPriceImpact(xtzIn, xtzPool, tokenPool Amount) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(xtzIn, xtzPool, tokenPool) {
		return Amount{}, invalidf("xtz in, xtz pool and token pool must be positive")
	}
	// The burn is taken from the XTZ sold before it reaches the pool.
	xtzInNetBurn := xtzIn.mulInt(e.burn).quo(FromInt(basisScale))
	bought := xtzInNetBurn.mul(tokenPool).quo(xtzInNetBurn.add(xtzPool))
	ideal := xtzIn.mul(tokenPool).quo(xtzPool)
	return priceImpact(ideal, bought), nil
}

// XtzToTokenMinimumTokenOutput returns the smallest token output to accept
// for a quoted tokenOut under the slippage tolerance in [0, 1].
func (e Exchange) XtzToTokenMinimumTokenOutput(tokenOut, slippage Amount) (Amount, error) {
	return minimumOutput(tokenOut, slippage)
}
