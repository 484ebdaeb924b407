package dexter

import "fmt"

var hundred = FromInt(100)

// Exchange is the fixed configuration of one exchange contract. A quote, its
// inverse and the liquidity math for the same pool must all use the same
// Exchange, so the subsidy flag can never disagree between calls.
//
// Exchange is a small immutable value and is safe for concurrent use.
type Exchange struct {
	fee            int64
	burn           int64
	creditsSubsidy bool
}

// NewExchange builds an Exchange from fee and burn percentages in [0, 100].
// Percentages have 0.1% resolution; finer digits are floored away.
func NewExchange(feePercent, burnPercent Amount, creditsSubsidy bool) (Exchange, error) {
	fee, err := basisMultiplier(feePercent)
	if err != nil {
		return Exchange{}, fmt.Errorf("fee percent: %w", err)
	}
	burn, err := basisMultiplier(burnPercent)
	if err != nil {
		return Exchange{}, fmt.Errorf("burn percent: %w", err)
	}
	return Exchange{fee: fee, burn: burn, creditsSubsidy: creditsSubsidy}, nil
}

// LiquidityBaking returns the liquidity baking CPMM: 0.1% fee, 0.1% burn and
// the per-block subsidy credited to the XTZ pool.
func LiquidityBaking() Exchange {
	return Exchange{fee: 999, burn: 999, creditsSubsidy: true}
}

// DexterV1 returns the original Dexter exchange: 0.3% fee, no burn, no
// subsidy.
func DexterV1() Exchange {
	return Exchange{fee: 997, burn: basisScale}
}

// basisMultiplier returns 1000 - floor(percent*10).
func basisMultiplier(percent Amount) (int64, error) {
	if percent.Sign() < 0 || percent.Cmp(hundred) > 0 {
		return 0, invalidf("percent %s outside [0, 100]", percent)
	}
	tenths := percent.mulInt(10).Floor()
	// tenths is an integer in [0, 1000] here.
	return basisScale - tenths.r().Num().Int64(), nil
}

// Fee returns the fee multiplier in [0, 1000].
func (e Exchange) Fee() int64 { return e.fee }

// Burn returns the burn multiplier in [0, 1000].
func (e Exchange) Burn() int64 { return e.burn }

// FeeMultiplier returns fee*burn in [0, 1000000].
func (e Exchange) FeeMultiplier() int64 { return e.fee * e.burn }

// CreditsSubsidy reports whether XTZ pools are credited with SubsidyCredit.
func (e Exchange) CreditsSubsidy() bool { return e.creditsSubsidy }

func (e Exchange) String() string {
	return fmt.Sprintf("exchange{fee=%d burn=%d subsidy=%t}", e.fee, e.burn, e.creditsSubsidy)
}

// creditSubsidy must be applied exactly once, at the exported entry point,
// to the pool value the caller supplied.
func (e Exchange) creditSubsidy(xtzPool Amount) Amount {
	if !e.creditsSubsidy {
		return xtzPool
	}
	return xtzPool.add(FromInt(SubsidyCredit))
}
