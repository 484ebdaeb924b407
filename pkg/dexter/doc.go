// Package dexter quotes trades and liquidity operations against a Tezos
// constant-product exchange, either the original Dexter contracts or the
// liquidity baking CPMM.
//
// Every function is pure. Pool reserves are supplied by the caller, in the
// smallest unit of each asset (mutez for XTZ), and all arithmetic is exact
// rational arithmetic mirroring the contract's integer math. Failures of any
// kind are reported as ErrInvalidInput.
//
// A typical quote:
//
//	lb := dexter.LiquidityBaking()
//	out, err := lb.XtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool)
//	if err != nil {
//		return err
//	}
//	min, err := lb.XtzToTokenMinimumTokenOutput(out.Floor(), dexter.MustAmount("0.005"))
package dexter
