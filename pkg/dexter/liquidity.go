package dexter

// AddLiquidityTokenIn returns the tokens that must accompany an xtzIn
// deposit. It rounds up so a depositor can never under-supply tokens.
func (e Exchange) AddLiquidityTokenIn(xtzIn, xtzPool, tokenPool Amount) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(xtzIn, xtzPool, tokenPool) {
		return Amount{}, invalidf("xtz in, xtz pool and token pool must be positive")
	}
	return ceilingDivide(xtzIn.mul(tokenPool), xtzPool), nil
}

// AddLiquidityXtzIn returns the mutez that must accompany a tokenIn deposit,
// truncated toward zero.
func (e Exchange) AddLiquidityXtzIn(tokenIn, xtzPool, tokenPool Amount) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if !allPositive(tokenIn, xtzPool, tokenPool) {
		return Amount{}, invalidf("token in, xtz pool and token pool must be positive")
	}
	return truncatingDivide(tokenIn.mul(xtzPool), tokenPool), nil
}

// AddLiquidityLiquidityCreated returns the liquidity tokens minted for an
// xtzIn deposit into a pool that already has liquidity outstanding.
//
// A pool with no outstanding liquidity would mint nothing under this
// formula, so that case is rejected; use InitialLiquidity for the first
// deposit.
func (e Exchange) AddLiquidityLiquidityCreated(xtzIn, xtzPool, totalLiquidity Amount) (Amount, error) {
	xtzPool = e.creditSubsidy(xtzPool)
	if isZero(totalLiquidity) {
		return Amount{}, invalidf("pool has no liquidity outstanding, bootstrap with InitialLiquidity")
	}
	if !allPositive(xtzIn, xtzPool, totalLiquidity) {
		return Amount{}, invalidf("xtz in, xtz pool and total liquidity must be positive")
	}
	return xtzIn.mul(totalLiquidity).quo(xtzPool), nil
}

// InitialLiquidity returns the liquidity minted by the first deposit into an
// empty pool: one liquidity token per mutez deposited.
func InitialLiquidity(xtzIn Amount) (Amount, error) {
	if !isPositive(xtzIn) {
		return Amount{}, invalidf("xtz in %s must be positive", xtzIn)
	}
	return xtzIn, nil
}

// RemoveLiquidityXtzOut returns the mutez paid out for burning
// liquidityBurned of totalLiquidity.
func (e Exchange) RemoveLiquidityXtzOut(liquidityBurned, totalLiquidity, xtzPool Amount) (Amount, error) {
	return removeLiquidity(liquidityBurned, totalLiquidity, e.creditSubsidy(xtzPool))
}

// RemoveLiquidityTokenOut returns the tokens paid out for burning
// liquidityBurned of totalLiquidity.
func (e Exchange) RemoveLiquidityTokenOut(liquidityBurned, totalLiquidity, tokenPool Amount) (Amount, error) {
	return removeLiquidity(liquidityBurned, totalLiquidity, tokenPool)
}

func removeLiquidity(liquidityBurned, totalLiquidity, reserve Amount) (Amount, error) {
	if !allPositive(liquidityBurned, totalLiquidity, reserve) {
		return Amount{}, invalidf("liquidity burned, total liquidity and reserve must be positive")
	}
	return reserve.mul(liquidityBurned).quo(totalLiquidity), nil
}
