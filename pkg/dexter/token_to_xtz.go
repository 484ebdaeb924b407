package dexter

// TokenToXtzXtzOutput returns the mutez bought by selling tokenIn tokens,
// after the fee on the token leg and the burn on the XTZ leg.
func (e Exchange) TokenToXtzXtzOutput(tokenIn, xtzPool, tokenPool Amount) (Amount, error) {
	return e.tokenToXtzXtzOutput(tokenIn, e.creditSubsidy(xtzPool), tokenPool)
}

func (e Exchange) tokenToXtzXtzOutput(tokenIn, xtzPool, tokenPool Amount) (Amount, error) {
	if !allPositive(tokenIn, xtzPool, tokenPool) {
		return Amount{}, invalidf("token in, xtz pool and token pool must be positive")
	}
	// (tokenIn * xtzPool * fee * burn) / (tokenPool * 1000000 + tokenIn * fee * 1000)
	numerator := tokenIn.mul(xtzPool).mulInt(e.FeeMultiplier())
	denominator := tokenPool.mulInt(multiplierScale).add(tokenIn.mulInt(e.fee * basisScale))
	return numerator.quo(denominator), nil
}

// TokenToXtzTokenInput returns the tokens that must be sold to receive xtzOut
// mutez. It fails when xtzOut cannot be paid out of xtzPool net of the burn.
func (e Exchange) TokenToXtzTokenInput(xtzOut, xtzPool, tokenPool Amount, decimals int) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(xtzOut, xtzPool, tokenPool) {
		return Amount{}, invalidf("xtz out, xtz pool and token pool must be positive")
	}
	if err := validDecimals(decimals); err != nil {
		return Amount{}, err
	}
	// (xtzOut * tokenPool * 1000000) / (fee * (xtzPool * burn - xtzOut * 1000))
	numerator := xtzOut.mul(tokenPool).mulInt(multiplierScale)
	denominator := xtzPool.mulInt(e.burn).sub(xtzOut.mulInt(basisScale)).mulInt(e.fee)
	if isNonPositive(denominator) {
		return Amount{}, invalidf("xtz out %s exceeds what the pool can provide", xtzOut)
	}
	result := numerator.quo(denominator)
	if !isPositive(result) {
		return Amount{}, invalidf("no positive token input buys %s mutez", xtzOut)
	}
	return result, nil
}

// TokenToXtzExchangeRate returns mutez received per token sold, fees
// included.
func (e Exchange) TokenToXtzExchangeRate(tokenIn, xtzPool, tokenPool Amount) (Amount, error) {
	out, err := e.tokenToXtzXtzOutput(tokenIn, e.creditSubsidy(xtzPool), tokenPool)
	if err != nil {
		return Amount{}, err
	}
	return out.quo(tokenIn), nil
}

// TokenToXtzExchangeRateForDisplay is TokenToXtzExchangeRate in XTZ per whole
// token.
func (e Exchange) TokenToXtzExchangeRateForDisplay(tokenIn, xtzPool, tokenPool Amount, decimals int) (Amount, error) {
	if err := validDecimals(decimals); err != nil {
		return Amount{}, err
	}
	out, err := e.tokenToXtzXtzOutput(tokenIn, e.creditSubsidy(xtzPool), tokenPool)
	if err != nil {
		return Amount{}, err
	}
	// (out * 10^-6) / (tokenIn * 10^-decimals)
	return out.mul(pow10(decimals)).quo(tokenIn.mul(pow10(XtzDecimals))), nil
}

// TokenToXtzMarketRate returns the fee-free reserve ratio in XTZ per whole
// token.
func (e Exchange) TokenToXtzMarketRate(xtzPool, tokenPool Amount, decimals int) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(xtzPool, tokenPool) {
		return Amount{}, invalidf("xtz pool and token pool must be positive")
	}
	if err := validDecimals(decimals); err != nil {
		return Amount{}, err
	}
	xtz := xtzPool.quo(pow10(XtzDecimals))
	tokens := tokenPool.quo(pow10(decimals))
	return xtz.quo(tokens), nil
}

// TokenToXtzPriceImpact returns the fraction by which selling tokenIn moves
// the realised price away from the reserve ratio, in [0, 1).
func (e Exchange) TokenToXtzPriceImpact(tokenIn, xtzPool, tokenPool Amount) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(tokenIn, xtzPool, tokenPool) {
		return Amount{}, invalidf("token in, xtz pool and token pool must be positive")
	}
	bought := tokenIn.mul(xtzPool).quo(tokenIn.add(tokenPool))
	// The burn is taken from the XTZ bought on its way out.
	xtzNetBurn := bought.mulInt(e.burn).quo(FromInt(basisScale))
	ideal := tokenIn.mul(xtzPool).quo(tokenPool)
	return priceImpact(ideal, xtzNetBurn), nil
}

// TokenToXtzMinimumXtzOutput returns the smallest XTZ output to accept for a
// quoted xtzOut under the slippage tolerance in [0, 1].
func (e Exchange) TokenToXtzMinimumXtzOutput(xtzOut, slippage Amount) (Amount, error) {
	return minimumOutput(xtzOut, slippage)
}
