package dexter

import "math/big"

const (
	// SubsidyCredit is the per-block liquidity baking subsidy, in mutez,
	// credited to the XTZ pool before pricing.
	SubsidyCredit = 2_500_000

	// XtzDecimals is the fixed display precision of XTZ.
	XtzDecimals = 6

	// MaxDecimals is the largest token precision accepted. FA1.2 and FA2
	// metadata store decimals as a single byte.
	MaxDecimals = 255

	// basisScale converts a percent with 0.1% resolution to a multiplier.
	basisScale = 1000
	// multiplierScale is the scale of fee*burn.
	multiplierScale = basisScale * basisScale
	slippageScale   = 100_000
	lpFeeDivisor    = 1000
)

var one = FromInt(1)

func isPositive(x Amount) bool    { return x.Sign() > 0 }
func isNonNegative(x Amount) bool { return x.Sign() >= 0 }
func isZero(x Amount) bool        { return x.Sign() == 0 }
func isNonPositive(x Amount) bool { return x.Sign() <= 0 }

// truncatingDivide returns the integer quotient of x/y rounded toward zero.
// y must be non-zero.
func truncatingDivide(x, y Amount) Amount {
	q := x.quo(y).r()
	return Amount{rat: new(big.Rat).SetInt(new(big.Int).Quo(q.Num(), q.Denom()))}
}

// ceilingDivide returns ⌈x/y⌉. y must be non-zero.
func ceilingDivide(x, y Amount) Amount {
	return x.quo(y).Ceil()
}

// pow10 returns 10^n for n >= 0.
func pow10(n int) Amount {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	return Amount{rat: new(big.Rat).SetInt(p)}
}

// allPositive reports whether every amount is strictly greater than zero.
func allPositive(xs ...Amount) bool {
	for _, x := range xs {
		if !isPositive(x) {
			return false
		}
	}
	return true
}
