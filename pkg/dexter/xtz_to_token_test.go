package dexter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXtzToTokenTokenOutput(t *testing.T) {
	e := mustExchange(t, "0.3", "0.1", false)
	cases := []struct {
		name                      string
		xtzIn, xtzPool, tokenPool int64
		wantFloor                 int64
	}{
		{"dust", 5, 100_000, 10, 0},
		{"one xtz", 1_000_000, 1_000_000_000, 250_000, 248},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := e.XtzToTokenTokenOutput(FromInt(tc.xtzIn), FromInt(tc.xtzPool), FromInt(tc.tokenPool))
			require.NoError(t, err)
			require.True(t, out.Floor().Equal(FromInt(tc.wantFloor)), "got %s", out)
		})
	}
}

func TestXtzToTokenTokenOutputIsExact(t *testing.T) {
	e := mustExchange(t, "0", "0", false)
	out, err := e.XtzToTokenTokenOutput(FromInt(500_000), FromInt(100_000), FromInt(10))
	require.NoError(t, err)
	require.True(t, out.Equal(FromInt(25).quo(FromInt(3))), "got %s", out)
}

func TestXtzToTokenTokenOutputFeeFreeBound(t *testing.T) {
	e := mustExchange(t, "0", "0", false)
	xtzPool, tokenPool := FromInt(1_000_000_000), FromInt(250_000)

	prev := Amount{}
	for _, in := range []int64{1, 10, 1_000, 1_000_000, 1_000_000_000} {
		xtzIn := FromInt(in)
		out, err := e.XtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool)
		require.NoError(t, err)
		require.Equal(t, 1, out.Cmp(prev), "output must increase with input")

		bound := xtzIn.mul(tokenPool).quo(xtzPool)
		require.Equal(t, -1, out.Cmp(bound), "output %s must stay below %s", out, bound)
		prev = out
	}

	// The gap to the bound shrinks relative to the bound as the input vanishes.
	gap := func(in int64) Amount {
		xtzIn := FromInt(in)
		out, err := e.XtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool)
		require.NoError(t, err)
		bound := xtzIn.mul(tokenPool).quo(xtzPool)
		return bound.sub(out).quo(bound)
	}
	require.Equal(t, -1, gap(1).Cmp(gap(1_000_000)))
}

func TestXtzToTokenTokenOutputRejects(t *testing.T) {
	e := LiquidityBaking()
	cases := []struct {
		name                      string
		xtzIn, xtzPool, tokenPool Amount
	}{
		{"zero input", FromInt(0), FromInt(1), FromInt(1)},
		{"negative input", FromInt(-1), FromInt(1), FromInt(1)},
		{"zero token pool", FromInt(1), FromInt(1), FromInt(0)},
		{"negative xtz pool after credit", FromInt(1), FromInt(-SubsidyCredit), FromInt(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.XtzToTokenTokenOutput(tc.xtzIn, tc.xtzPool, tc.tokenPool)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestXtzToTokenRoundTrip(t *testing.T) {
	for _, e := range []Exchange{LiquidityBaking(), DexterV1(), mustExchange(t, "0.3", "0.1", false)} {
		xtzIn, xtzPool, tokenPool := FromInt(1_000_000), FromInt(1_000_000_000), FromInt(250_000)
		out, err := e.XtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool)
		require.NoError(t, err)

		in, err := e.XtzToTokenXtzInput(out, xtzPool, tokenPool, 0)
		require.NoError(t, err)
		require.True(t, in.Cmp(xtzIn) >= 0, "%s: inverse %s below %s", e, in, xtzIn)

		// Asking for the floored output never needs more than the original input.
		in, err = e.XtzToTokenXtzInput(out.Floor(), xtzPool, tokenPool, 0)
		require.NoError(t, err)
		require.True(t, in.Cmp(xtzIn) <= 0)
	}
}

func TestXtzToTokenXtzInputRejects(t *testing.T) {
	e := DexterV1()
	_, err := e.XtzToTokenXtzInput(FromInt(250_000), FromInt(1_000_000), FromInt(250_000), 0)
	require.ErrorIs(t, err, ErrInvalidInput, "draining the pool")

	_, err = e.XtzToTokenXtzInput(FromInt(300_000), FromInt(1_000_000), FromInt(250_000), 0)
	require.ErrorIs(t, err, ErrInvalidInput, "more than the pool")

	_, err = e.XtzToTokenXtzInput(FromInt(1), FromInt(1_000_000), FromInt(250_000), -1)
	require.ErrorIs(t, err, ErrInvalidInput, "negative decimals")

	_, err = e.XtzToTokenXtzInput(FromInt(0), FromInt(1_000_000), FromInt(250_000), 0)
	require.ErrorIs(t, err, ErrInvalidInput, "zero output")

	full := mustExchange(t, "100", "0", false)
	_, err = full.XtzToTokenXtzInput(FromInt(1), FromInt(1_000_000), FromInt(250_000), 0)
	require.ErrorIs(t, err, ErrInvalidInput, "fee of 100%")
}

func TestXtzToTokenRates(t *testing.T) {
	e := LiquidityBaking()
	xtzIn, xtzPool, tokenPool := FromInt(2_000_000), FromInt(5_000_000_000), FromInt(80_000_000)

	out, err := e.XtzToTokenTokenOutput(xtzIn, xtzPool, tokenPool)
	require.NoError(t, err)

	rate, err := e.XtzToTokenExchangeRate(xtzIn, xtzPool, tokenPool)
	require.NoError(t, err)
	require.True(t, rate.Equal(out.quo(xtzIn)))

	display, err := e.XtzToTokenExchangeRateForDisplay(xtzIn, xtzPool, tokenPool, 8)
	require.NoError(t, err)
	require.True(t, display.Equal(rate.mul(pow10(6)).quo(pow10(8))))

	_, err = e.XtzToTokenExchangeRateForDisplay(xtzIn, xtzPool, tokenPool, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = e.XtzToTokenExchangeRate(FromInt(0), xtzPool, tokenPool)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestXtzToTokenMarketRate(t *testing.T) {
	// 2 XTZ against 5 tokens with 3 decimals.
	rate, err := DexterV1().XtzToTokenMarketRate(FromInt(2_000_000), FromInt(5_000), 3)
	require.NoError(t, err)
	require.True(t, rate.Equal(MustAmount("2.5")), "got %s", rate)

	// The subsidy lifts the XTZ side to 4.5 XTZ.
	rate, err = LiquidityBaking().XtzToTokenMarketRate(FromInt(2_000_000), FromInt(5_000), 3)
	require.NoError(t, err)
	require.True(t, rate.Equal(FromInt(10).quo(FromInt(9))), "got %s", rate)

	_, err = DexterV1().XtzToTokenMarketRate(FromInt(0), FromInt(5_000), 3)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestXtzToTokenPriceImpact(t *testing.T) {
	e := mustExchange(t, "0", "0", false)
	impact, err := e.XtzToTokenPriceImpact(FromInt(1_000), FromInt(1_000), FromInt(1_000))
	require.NoError(t, err)
	require.True(t, impact.Equal(MustAmount("0.5")), "got %s", impact)

	burnAll := mustExchange(t, "0", "100", false)
	impact, err = burnAll.XtzToTokenPriceImpact(FromInt(1_000), FromInt(1_000), FromInt(1_000))
	require.NoError(t, err)
	require.True(t, isZero(impact))

	lb := LiquidityBaking()
	for _, in := range []int64{1, 1_000, 1_000_000, 1_000_000_000_000} {
		impact, err := lb.XtzToTokenPriceImpact(FromInt(in), FromInt(1_000_000_000), FromInt(250_000))
		require.NoError(t, err)
		require.True(t, isNonNegative(impact))
		require.Equal(t, -1, impact.Cmp(one))
	}

	_, err = lb.XtzToTokenPriceImpact(FromInt(0), FromInt(1), FromInt(1))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMinimumOutput(t *testing.T) {
	e := LiquidityBaking()
	cases := []struct {
		out, slippage string
		want          int64
	}{
		{"1000", "0", 1000},
		{"1000", "0.01", 990},
		{"1000", "0.005", 995},
		{"1000", "1", 1},
		{"0.5", "0", 1},
		{"248.753", "0.001", 248},
		{"2", "0.999999", 1},
	}
	for _, tc := range cases {
		got, err := e.XtzToTokenMinimumTokenOutput(MustAmount(tc.out), MustAmount(tc.slippage))
		require.NoError(t, err)
		require.True(t, got.Equal(FromInt(tc.want)), "min(%s, %s) = %s", tc.out, tc.slippage, got)

		got, err = e.TokenToXtzMinimumXtzOutput(MustAmount(tc.out), MustAmount(tc.slippage))
		require.NoError(t, err)
		require.True(t, got.Equal(FromInt(tc.want)))
	}
}

func TestMinimumOutputMonotone(t *testing.T) {
	out := FromInt(123_456_789)
	prev := Amount{}
	for i, s := range []string{"1", "0.5", "0.1", "0.01", "0.00123", "0.00001", "0"} {
		got, err := minimumOutput(out, MustAmount(s))
		require.NoError(t, err)
		require.True(t, got.Cmp(one) >= 0)
		if i > 0 {
			require.True(t, got.Cmp(prev) >= 0, "lower slippage %s gave %s < %s", s, got, prev)
		}
		prev = got
	}
}

func TestMinimumOutputRejects(t *testing.T) {
	for _, tc := range []struct{ out, slippage string }{
		{"0", "0.01"},
		{"-5", "0.01"},
		{"100", "-0.01"},
		{"100", "1.01"},
	} {
		_, err := minimumOutput(MustAmount(tc.out), MustAmount(tc.slippage))
		require.ErrorIs(t, err, ErrInvalidInput, "%s at %s", tc.out, tc.slippage)
	}
}

func TestDecimalsAreBounded(t *testing.T) {
	e := DexterV1()
	_, err := e.XtzToTokenMarketRate(FromInt(1_000_000), FromInt(1_000), MaxDecimals+1)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = e.TokenToXtzExchangeRateForDisplay(FromInt(10), FromInt(1_000_000), FromInt(1_000), 50_000_000)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = e.XtzToTokenXtzInput(FromInt(1), FromInt(1_000_000), FromInt(1_000), MaxDecimals+1)
	require.ErrorIs(t, err, ErrInvalidInput)

	rate, err := e.XtzToTokenMarketRate(FromInt(1_000_000), FromInt(1_000), MaxDecimals)
	require.NoError(t, err)
	require.True(t, rate.Equal(FromInt(1_000).quo(pow10(MaxDecimals))))
}
