package cndata

import (
	"sort"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
	"github.com/shopspring/decimal"
)

/*
ReferenceRow static attributes of one tradable instrument on a trading day.
Optional numbers stay invalid when the upstream does not publish them.
*/
type ReferenceRow struct {
	InstrumentID     string
	ProductID        string
	Name             string
	Unit             decimal.NullDecimal
	TickSize         decimal.NullDecimal
	ListPrice        decimal.NullDecimal
	UpperLimitPrice  decimal.NullDecimal
	LowerLimitPrice  decimal.NullDecimal
	LimitRatio       decimal.NullDecimal
	PositionLimit    decimal.NullDecimal
	FirstTradingDay  string
	LastTradingDay   string
	FirstDeliveryDay string
	LastDeliveryDay  string
	CallPut          string
	StrikePrice      decimal.NullDecimal
	ExecType         string
	DeliveryMethod   string
	Underlying       string
	// never published by any source
	Margin decimal.NullDecimal
}

// EodRow end-of-day statistics of one instrument
type EodRow struct {
	InstrumentID   string
	TradingDay     string
	Currency       string
	PreClosePrice  decimal.NullDecimal
	OpenPrice      decimal.NullDecimal
	HighPrice      decimal.NullDecimal
	LowPrice       decimal.NullDecimal
	ClosePrice     decimal.NullDecimal
	PreSettlePrice decimal.NullDecimal
	SettlePrice    decimal.NullDecimal
	BidPrice       decimal.NullDecimal
	AskPrice       decimal.NullDecimal
	Volume         decimal.NullDecimal
	Turnover       decimal.NullDecimal
	OpenInterest   decimal.NullDecimal
}

type ReferenceTable []*ReferenceRow
type EodTable []*EodRow

const (
	FldInstrumentID     = "InstrumentID"
	FldProductID        = "ProductID"
	FldName             = "Name"
	FldUnit             = "Unit"
	FldTickSize         = "TickSize"
	FldListPrice        = "ListPrice"
	FldUpperLimitPrice  = "UpperLimitPrice"
	FldLowerLimitPrice  = "LowerLimitPrice"
	FldLimitRatio       = "LimitRatio"
	FldPositionLimit    = "PositionLimit"
	FldFirstTradingDay  = "FirstTradingDay"
	FldLastTradingDay   = "LastTradingDay"
	FldFirstDeliveryDay = "FirstDeliveryDay"
	FldLastDeliveryDay  = "LastDeliveryDay"
	FldCallPut          = "CallPut"
	FldStrikePrice      = "StrikePrice"
	FldExecType         = "ExecType"
	FldDeliveryMethod   = "DeliveryMethod"
	FldUnderlying       = "Underlying"

	FldTradingDay     = "TradingDay"
	FldCurrency       = "Currency"
	FldPreClosePrice  = "PreClosePrice"
	FldOpenPrice      = "OpenPrice"
	FldHighPrice      = "HighPrice"
	FldLowPrice       = "LowPrice"
	FldClosePrice     = "ClosePrice"
	FldPreSettlePrice = "PreSettlePrice"
	FldSettlePrice    = "SettlePrice"
	FldBidPrice       = "BidPrice"
	FldAskPrice       = "AskPrice"
	FldVolume         = "Volume"
	FldTurnover       = "Turnover"
	FldOpenInterest   = "OpenInterest"
)

const (
	RuleNull = iota // placeholder cells become invalid
	RuleZero        // placeholder cells become 0
	RuleDate        // normalize to YYYYMMDD
	RuleText        // keep trimmed text
)

/*
ColSpec maps one source column (header text, json key or xml tag) to a canonical field.
Scale multiplies the cleaned number, e.g. utils.TenThousand for 万元.
*/
type ColSpec struct {
	Field    string
	Src      string
	Rule     int
	Scale    int64
	Optional bool
}

func (c ColSpec) value(rec map[string]string) (string, bool, *errs.Error) {
	raw, ok := rec[c.Src]
	if !ok {
		if c.Optional {
			return "", false, nil
		}
		return "", false, errs.NewMsg(errs.CodeInvalidResponse, "column %s missing for %s", c.Src, c.Field)
	}
	return raw, true, nil
}

func (c ColSpec) number(raw string) (decimal.NullDecimal, *errs.Error) {
	num, err := utils.ParseNullDec(raw, c.Rule == RuleZero)
	if err != nil {
		return num, errs.NewMsg(errs.CodeInvalidResponse, "%s: bad number %q for %s", c.Src, raw, c.Field)
	}
	if num.Valid && c.Scale > 1 {
		num.Decimal = num.Decimal.Mul(decimal.NewFromInt(c.Scale))
	}
	return num, nil
}

func (c ColSpec) text(raw string) (string, *errs.Error) {
	if c.Rule == RuleDate {
		if utils.IsPlaceholder(raw) {
			return "", nil
		}
		day, err := utils.CompactDate(raw)
		if err != nil {
			return "", errs.NewMsg(errs.CodeInvalidResponse, "%s: %v", c.Src, err)
		}
		return day, nil
	}
	return trimText(raw), nil
}

/*
ParseRef build a ReferenceRow from one source record
*/
func ParseRef(specs []ColSpec, rec map[string]string) (*ReferenceRow, *errs.Error) {
	row := &ReferenceRow{}
	for _, c := range specs {
		raw, ok, err := c.value(rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err = row.Set(c, raw); err != nil {
			return nil, err
		}
	}
	return row, nil
}

/*
ParseEod build an EodRow from one source record
*/
func ParseEod(specs []ColSpec, rec map[string]string) (*EodRow, *errs.Error) {
	row := &EodRow{}
	for _, c := range specs {
		raw, ok, err := c.value(rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err = row.Set(c, raw); err != nil {
			return nil, err
		}
	}
	return row, nil
}

func (r *ReferenceRow) Set(c ColSpec, raw string) *errs.Error {
	var err *errs.Error
	var txt *string
	var num *decimal.NullDecimal
	switch c.Field {
	case FldInstrumentID:
		txt = &r.InstrumentID
	case FldProductID:
		txt = &r.ProductID
	case FldName:
		txt = &r.Name
	case FldCallPut:
		txt = &r.CallPut
	case FldExecType:
		txt = &r.ExecType
	case FldDeliveryMethod:
		txt = &r.DeliveryMethod
	case FldUnderlying:
		txt = &r.Underlying
	case FldFirstTradingDay:
		txt = &r.FirstTradingDay
	case FldLastTradingDay:
		txt = &r.LastTradingDay
	case FldFirstDeliveryDay:
		txt = &r.FirstDeliveryDay
	case FldLastDeliveryDay:
		txt = &r.LastDeliveryDay
	case FldUnit:
		num = &r.Unit
	case FldTickSize:
		num = &r.TickSize
	case FldListPrice:
		num = &r.ListPrice
	case FldUpperLimitPrice:
		num = &r.UpperLimitPrice
	case FldLowerLimitPrice:
		num = &r.LowerLimitPrice
	case FldLimitRatio:
		num = &r.LimitRatio
	case FldPositionLimit:
		num = &r.PositionLimit
	case FldStrikePrice:
		num = &r.StrikePrice
	default:
		return errs.NewMsg(errs.CodeParamInvalid, "unknown reference field: %s", c.Field)
	}
	if txt != nil {
		*txt, err = c.text(raw)
	} else {
		*num, err = c.number(raw)
	}
	return err
}

func (r *EodRow) Set(c ColSpec, raw string) *errs.Error {
	var err *errs.Error
	var num *decimal.NullDecimal
	switch c.Field {
	case FldInstrumentID:
		r.InstrumentID = trimText(raw)
		return nil
	case FldCurrency:
		r.Currency = trimText(raw)
		return nil
	case FldTradingDay:
		day, err_ := utils.CompactDate(raw)
		if err_ != nil {
			return errs.NewMsg(errs.CodeInvalidResponse, "%s: %v", c.Src, err_)
		}
		r.TradingDay = day
		return nil
	case FldPreClosePrice:
		num = &r.PreClosePrice
	case FldOpenPrice:
		num = &r.OpenPrice
	case FldHighPrice:
		num = &r.HighPrice
	case FldLowPrice:
		num = &r.LowPrice
	case FldClosePrice:
		num = &r.ClosePrice
	case FldPreSettlePrice:
		num = &r.PreSettlePrice
	case FldSettlePrice:
		num = &r.SettlePrice
	case FldBidPrice:
		num = &r.BidPrice
	case FldAskPrice:
		num = &r.AskPrice
	case FldVolume:
		num = &r.Volume
	case FldTurnover:
		num = &r.Turnover
	case FldOpenInterest:
		num = &r.OpenInterest
	default:
		return errs.NewMsg(errs.CodeParamInvalid, "unknown eod field: %s", c.Field)
	}
	*num, err = c.number(raw)
	return err
}

// CheckSpecs reject unknown canonical names when a source table is declared
func CheckSpecs(specs []ColSpec, eod bool) *errs.Error {
	for _, c := range specs {
		probe := ColSpec{Field: c.Field, Src: c.Src, Rule: RuleText}
		var err *errs.Error
		if eod {
			err = (&EodRow{}).Set(probe, "20000101")
		} else {
			err = (&ReferenceRow{}).Set(probe, "0")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t ReferenceTable) Filter(keep func(r *ReferenceRow) bool) ReferenceTable {
	res := make(ReferenceTable, 0, len(t))
	for _, r := range t {
		if keep(r) {
			res = append(res, r)
		}
	}
	return res
}

func (t ReferenceTable) SortByID() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].InstrumentID < t[j].InstrumentID
	})
}

func (t EodTable) Filter(keep func(r *EodRow) bool) EodTable {
	res := make(EodTable, 0, len(t))
	for _, r := range t {
		if keep(r) {
			res = append(res, r)
		}
	}
	return res
}

func (t EodTable) SortByID() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].InstrumentID < t[j].InstrumentID
	})
}

// Index map rows by InstrumentID, the last duplicate wins
func (t EodTable) Index() map[string]*EodRow {
	res := make(map[string]*EodRow, len(t))
	for _, r := range t {
		res[r.InstrumentID] = r
	}
	return res
}

func (t ReferenceTable) IDs() []string {
	res := make([]string, 0, len(t))
	for _, r := range t {
		res = append(res, r.InstrumentID)
	}
	return res
}

func (t EodTable) IDs() []string {
	res := make([]string, 0, len(t))
	for _, r := range t {
		res = append(res, r.InstrumentID)
	}
	return res
}

// HasSettle drop rows without a published settlement price
func HasSettle(r *EodRow) bool {
	return r.SettlePrice.Valid
}

func NullDec(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}
