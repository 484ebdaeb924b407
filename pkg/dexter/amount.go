package dexter

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the decimal exponent ParseAmount accepts, in either
// direction, since every parsed amount is expanded into an exact rational.
const MaxExponent = 512

// StringPlaces is the number of fractional digits String uses when an amount
// has no terminating decimal expansion.
const StringPlaces = 24

// Amount is an exact quantity: a pool reserve, a trade input or output, a
// liquidity balance or a rate derived from them. The zero value is 0.
//
// Amounts are immutable; every operation returns a new value.
type Amount struct {
	rat *big.Rat
}

// NewAmount coerces v into an Amount. Supported inputs are the integer kinds,
// float32/float64, base-10 strings, decimal.Decimal, *big.Int, *big.Rat and
// Amount itself. Non-finite floats, malformed strings, nil pointers and other
// types fail with ErrInvalidInput.
func NewAmount(v any) (Amount, error) {
	switch x := v.(type) {
	case Amount:
		return x, nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return Amount{}, invalidf("non-finite amount %v", x)
		}
		return FromDecimal(decimal.NewFromFloat32(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Amount{}, invalidf("non-finite amount %v", x)
		}
		return FromDecimal(decimal.NewFromFloat(x)), nil
	case string:
		return ParseAmount(x)
	case decimal.Decimal:
		return FromDecimal(x), nil
	case *big.Int:
		if x == nil {
			return Amount{}, invalidf("nil amount")
		}
		return Amount{rat: new(big.Rat).SetInt(x)}, nil
	case *big.Rat:
		if x == nil {
			return Amount{}, invalidf("nil amount")
		}
		return Amount{rat: new(big.Rat).Set(x)}, nil
	default:
		return Amount{}, invalidf("unsupported amount type %T", v)
	}
}

// ParseAmount parses a base-10 number such as "42", "-0.125" or "2.5e6".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, invalidf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, invalidf("amount %q: %v", s, err)
	}
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return Amount{}, invalidf("amount %q: exponent %d outside [-%d, %d]", s, exp, MaxExponent, MaxExponent)
	}
	return FromDecimal(d), nil
}

// MustAmount is like NewAmount but panics on failure. It is meant for
// constants and tests.
func MustAmount(v any) Amount {
	a, err := NewAmount(v)
	if err != nil {
		panic(err)
	}
	return a
}

// FromInt returns n as an Amount.
func FromInt(n int64) Amount {
	return Amount{rat: new(big.Rat).SetInt64(n)}
}

func fromUint(n uint64) Amount {
	return Amount{rat: new(big.Rat).SetUint64(n)}
}

// FromDecimal returns d as an Amount.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{rat: d.Rat()}
}

func (a Amount) r() *big.Rat {
	if a.rat == nil {
		return new(big.Rat)
	}
	return a.rat
}

// Sign returns -1, 0 or +1.
func (a Amount) Sign() int {
	return a.r().Sign()
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.r().Cmp(b.r())
}

// Equal reports whether a and b are the same number.
func (a Amount) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

// IsInt reports whether a has no fractional part.
func (a Amount) IsInt() bool {
	return a.r().IsInt()
}

// Rat returns a copy of the underlying rational.
func (a Amount) Rat() *big.Rat {
	return new(big.Rat).Set(a.r())
}

// Floor returns the greatest integer less than or equal to a.
func (a Amount) Floor() Amount {
	r := a.r()
	// Euclidean division by a positive denominator is floor division.
	q := new(big.Int).Div(r.Num(), r.Denom())
	return Amount{rat: new(big.Rat).SetInt(q)}
}

// Ceil returns the least integer greater than or equal to a.
func (a Amount) Ceil() Amount {
	return a.neg().Floor().neg()
}

// Float64 returns the nearest float64 and whether it is exact.
func (a Amount) Float64() (float64, bool) {
	return a.r().Float64()
}

// Decimal rounds a to the given number of fractional digits.
func (a Amount) Decimal(places int32) decimal.Decimal {
	if places < 0 {
		places = 0
	}
	return decimal.RequireFromString(a.r().FloatString(int(places)))
}

// String renders a in base 10. Terminating expansions are exact; anything
// else is rounded to StringPlaces digits.
func (a Amount) String() string {
	r := a.r()
	if r.IsInt() {
		return r.Num().String()
	}
	if n, exact := r.FloatPrec(); exact {
		return r.FloatString(n)
	}
	return r.FloatString(StringPlaces)
}

// MarshalJSON encodes a as a quoted decimal string so no precision is lost in
// float-based JSON decoders.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts a quoted or bare JSON number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) add(b Amount) Amount {
	return Amount{rat: new(big.Rat).Add(a.r(), b.r())}
}

func (a Amount) sub(b Amount) Amount {
	return Amount{rat: new(big.Rat).Sub(a.r(), b.r())}
}

func (a Amount) mul(b Amount) Amount {
	return Amount{rat: new(big.Rat).Mul(a.r(), b.r())}
}

func (a Amount) mulInt(n int64) Amount {
	return a.mul(FromInt(n))
}

// quo panics if b is zero; callers validate denominators first.
func (a Amount) quo(b Amount) Amount {
	return Amount{rat: new(big.Rat).Quo(a.r(), b.r())}
}

func (a Amount) neg() Amount {
	return Amount{rat: new(big.Rat).Neg(a.r())}
}
