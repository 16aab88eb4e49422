package cffex

import (
	"github.com/banbox/cndata"
	"github.com/shopspring/decimal"
)

type CFFEX struct {
	*cndata.Exchange
}

// MarginParam margin parameters of one index option series
type MarginParam struct {
	Underlying      string
	AdjustFactor    decimal.Decimal
	GuaranteeFactor decimal.Decimal
}
