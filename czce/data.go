package czce

import (
	"regexp"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/utils"
)

const (
	HostMain = "main"
)

const (
	MethodFutureRef   = "future_ref"
	MethodFutureDaily = "future_daily"
	MethodOptionRef   = "option_ref"
	MethodOptionDaily = "option_daily"
)

var (
	// 10吨/手 -> 10
	reLeadNum = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)
	// 单边持仓限额1000手 -> 1000
	reDigits  = regexp.MustCompile(`(\d+)`)
	reProduct = regexp.MustCompile(`^[A-Za-z]+`)
)

var futureRefSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "CtrCd"},
	{Field: cndata.FldProductID, Src: "PrdCd"},
	{Field: cndata.FldFirstTradingDay, Src: "FrstTrdDt", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "LstTrdDt", Rule: cndata.RuleDate},
	{Field: cndata.FldLastDeliveryDay, Src: "LstDlvryDt", Rule: cndata.RuleDate},
}

var optionRefSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "CtrCd"},
	{Field: cndata.FldProductID, Src: "PrdCd"},
	{Field: cndata.FldStrikePrice, Src: "StrikePx"},
	{Field: cndata.FldFirstTradingDay, Src: "FrstTrdDt", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "LstTrdDt", Rule: cndata.RuleDate},
	{Field: cndata.FldLastDeliveryDay, Src: "SettleDt", Rule: cndata.RuleDate},
}

// raw text columns shared by both reference files
const (
	colUnit     = "CtrSz"
	colTick     = "TckSz"
	colPxLimit  = "PxLim"
	colPosLimit = "MnthPosLmt"
	colCallPut  = "CallPutTp"
	colExec     = "ExerStyleTp"
	colSettle   = "SettleTp"
)

// FutureDataDaily / OptionDataDaily header names
var eodSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "合约代码"},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldOpenPrice, Src: "今开盘"},
	{Field: cndata.FldHighPrice, Src: "最高价"},
	{Field: cndata.FldLowPrice, Src: "最低价"},
	{Field: cndata.FldClosePrice, Src: "今收盘"},
	{Field: cndata.FldPreSettlePrice, Src: "昨结算"},
	{Field: cndata.FldSettlePrice, Src: "今结算"},
	{Field: cndata.FldVolume, Src: "成交量(手)"},
	{Field: cndata.FldTurnover, Src: "成交额(万元)", Scale: utils.TenThousand},
	{Field: cndata.FldOpenInterest, Src: "持仓量"},
}

const srcDay = "_DAY"
