package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	TenThousand      int64 = 10000
	HundredMillion   int64 = 100000000
	DefaultRoundPrec int32 = 2
)

var placeholders = map[string]bool{
	"":    true,
	"-":   true,
	"--":  true,
	"N/A": true,
	"nan": true,
	"NaN": true,
}

// IsPlaceholder reports whether a raw cell means "not published".
func IsPlaceholder(raw string) bool {
	return placeholders[strings.TrimSpace(raw)]
}

// CleanNum strips thousands separators and surrounding blanks.
func CleanNum(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.ReplaceAll(text, ",", "")
	return strings.ReplaceAll(text, " ", "")
}

func ParseDec(raw string) (decimal.Decimal, error) {
	text := CleanNum(raw)
	if IsPlaceholder(text) {
		return decimal.Zero, fmt.Errorf("empty number: %q", raw)
	}
	return decimal.NewFromString(text)
}

/*
ParseNullDec parse a cell into an optional decimal.
placeholders become invalid, or zero when zeroEmpty is set.
*/
func ParseNullDec(raw string, zeroEmpty bool) (decimal.NullDecimal, error) {
	text := CleanNum(raw)
	if IsPlaceholder(text) {
		if zeroEmpty {
			return decimal.NewNullDecimal(decimal.Zero), nil
		}
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

/*
RoundHalfUp round the decimal text of value to prec places, ties away from zero.
0.645 -> 0.65, 0.644 -> 0.64
*/
func RoundHalfUp(value string, prec int32) (decimal.Decimal, error) {
	d, err := ParseDec(value)
	if err != nil {
		return decimal.Zero, err
	}
	return RoundHalfUpDec(d, prec), nil
}

func RoundHalfUpDec(d decimal.Decimal, prec int32) decimal.Decimal {
	// decimal.Round rounds half away from zero
	return d.Round(prec)
}

/*
ScaleCurrency convert a unit-scaled figure into base units.
"1,234.5" with multiplier 10000 gives 12345000.0
*/
func ScaleCurrency(raw string, multiplier int64) (decimal.Decimal, error) {
	d, err := ParseDec(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Mul(decimal.NewFromInt(multiplier)), nil
}

func FloorToTick(value, tick decimal.Decimal) decimal.Decimal {
	if tick.IsZero() {
		return value
	}
	return value.Div(tick).Floor().Mul(tick)
}

/*
PriceLimit compute a daily limit price from the previous settlement.
upper: floor(pre*(1+ratio)/tick)*tick ; lower: floor(pre*(1-ratio)/tick)*tick
both rounded half-up to 2 places.
*/
func PriceLimit(preSettle, ratio, tick decimal.Decimal, upper bool) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	if upper {
		factor = factor.Add(ratio)
	} else {
		factor = factor.Sub(ratio)
	}
	return RoundHalfUpDec(FloorToTick(preSettle.Mul(factor), tick), DefaultRoundPrec)
}
