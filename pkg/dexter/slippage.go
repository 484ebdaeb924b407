package dexter

// minimumOutput applies a slippage tolerance to a quoted output the way the
// contract entrypoints expect it: in fixed point, truncating at every step,
// and never below 1.
func minimumOutput(out, slippage Amount) (Amount, error) {
	if !isPositive(out) {
		return Amount{}, invalidf("output %s must be positive", out)
	}
	if !isNonNegative(slippage) || slippage.Cmp(one) > 0 {
		return Amount{}, invalidf("slippage %s outside [0, 1]", slippage)
	}
	scaled := out.mulInt(basisScale).Floor()
	tolerance := slippage.mulInt(slippageScale).Floor()
	lost := truncatingDivide(scaled.mul(tolerance), FromInt(slippageScale))
	result := truncatingDivide(scaled.sub(lost), FromInt(basisScale))
	if result.Cmp(one) < 0 {
		return one, nil
	}
	return result, nil
}

// priceImpact compares the ideal zero-size quote with the realised proceeds.
func priceImpact(ideal, proceeds Amount) Amount {
	if isNonPositive(proceeds) {
		return Amount{}
	}
	return ideal.sub(proceeds).quo(ideal)
}

func validDecimals(decimals int) error {
	if decimals < 0 || decimals > MaxDecimals {
		return invalidf("decimals %d outside [0, %d]", decimals, MaxDecimals)
	}
	return nil
}
