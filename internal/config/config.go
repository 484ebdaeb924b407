package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nulln0ne/dexter-estimator/pkg/dexter"
	"github.com/shopspring/decimal"
)

// Exchange kinds accepted in EXCHANGE_KIND.
const (
	KindLiquidityBaking = "liquidity_baking"
	KindDexter          = "dexter"
)

type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
	Exchange  dexter.Exchange
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	exchange, err := exchangeFromEnv()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:      addr,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Exchange:  exchange,
	}

	return cfg, nil
}

// exchangeFromEnv starts from the EXCHANGE_KIND preset and applies the
// FEE_PERCENT, BURN_PERCENT and CREDIT_SUBSIDY overrides that are set.
func exchangeFromEnv() (dexter.Exchange, error) {
	var preset dexter.Exchange
	switch kind := strings.ToLower(strings.TrimSpace(os.Getenv("EXCHANGE_KIND"))); kind {
	case "", KindLiquidityBaking:
		preset = dexter.LiquidityBaking()
	case KindDexter:
		preset = dexter.DexterV1()
	default:
		return dexter.Exchange{}, fmt.Errorf("%w: %q", ErrUnknownExchangeKind, kind)
	}

	fee, err := percentFromEnv("FEE_PERCENT", preset.Fee(), ErrInvalidFeePercent)
	if err != nil {
		return dexter.Exchange{}, err
	}
	burn, err := percentFromEnv("BURN_PERCENT", preset.Burn(), ErrInvalidBurnPercent)
	if err != nil {
		return dexter.Exchange{}, err
	}

	subsidy := preset.CreditsSubsidy()
	if v := os.Getenv("CREDIT_SUBSIDY"); v != "" {
		subsidy, err = strconv.ParseBool(v)
		if err != nil {
			return dexter.Exchange{}, fmt.Errorf("%w: %q", ErrInvalidCreditSubsidy, v)
		}
	}

	exchange, err := dexter.NewExchange(fee, burn, subsidy)
	if err != nil {
		return dexter.Exchange{}, err
	}
	return exchange, nil
}

// percentFromEnv reads a percent override, falling back to the percent the
// preset multiplier encodes.
func percentFromEnv(key string, presetMultiplier int64, sentinel error) (dexter.Amount, error) {
	v := os.Getenv(key)
	if v == "" {
		// multiplier = 1000 - percent*10
		return dexter.FromDecimal(decimal.New(1000-presetMultiplier, -1)), nil
	}
	percent, err := dexter.ParseAmount(v)
	if err != nil {
		return dexter.Amount{}, fmt.Errorf("%w: %q", sentinel, v)
	}
	if percent.Sign() < 0 || percent.Cmp(dexter.FromInt(100)) > 0 {
		return dexter.Amount{}, fmt.Errorf("%w: %q outside [0, 100]", sentinel, v)
	}
	return percent, nil
}
