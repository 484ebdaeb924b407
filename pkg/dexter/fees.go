package dexter

// TotalLiquidityProviderFee returns the share of a trade of xtzIn mutez kept
// by liquidity providers: a flat 0.1%, independent of the exchange fee.
func TotalLiquidityProviderFee(xtzIn Amount) (Amount, error) {
	if !isPositive(xtzIn) {
		return Amount{}, invalidf("xtz in %s must be positive", xtzIn)
	}
	return xtzIn.quo(FromInt(lpFeeDivisor)), nil
}

// LiquidityProviderFee pro-rates TotalLiquidityProviderFee by the holder's
// share userLiquidity/totalLiquidity.
func LiquidityProviderFee(xtzIn, totalLiquidity, userLiquidity Amount) (Amount, error) {
	total, err := TotalLiquidityProviderFee(xtzIn)
	if err != nil {
		return Amount{}, err
	}
	if !allPositive(totalLiquidity, userLiquidity) {
		return Amount{}, invalidf("total liquidity and user liquidity must be positive")
	}
	return total.quo(totalLiquidity.quo(userLiquidity)), nil
}
