package gfex

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/utils"
)

const (
	HostMain = "main"
)

const (
	MethodContractInfo = "contract_info"
	MethodTradePara    = "trade_para"
	MethodDayQuotes    = "day_quotes"
)

const (
	tradeFutures = "0"
	tradeOption  = "1"
)

const srcDay = "_DAY"

var infoSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "contractId"},
	{Field: cndata.FldProductID, Src: "varietyOrder"},
	{Field: cndata.FldUnit, Src: "unit"},
	{Field: cndata.FldTickSize, Src: "tick"},
	{Field: cndata.FldFirstTradingDay, Src: "startTradeDate", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "endTradeDate", Rule: cndata.RuleDate},
	// options carry no delivery date
	{Field: cndata.FldLastDeliveryDay, Src: "endDeliveryDate0", Rule: cndata.RuleDate, Optional: true},
}

var paraSpecs = []cndata.ColSpec{
	{Field: cndata.FldUpperLimitPrice, Src: "riseLimit"},
	{Field: cndata.FldLowerLimitPrice, Src: "fallLimit"},
	{Field: cndata.FldPositionLimit, Src: "clientBuySerLimit"},
}

// futures ids are built from varietyOrder + delivMonth, options carry the full id in delivMonth
var eodSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldOpenPrice, Src: "open"},
	{Field: cndata.FldHighPrice, Src: "high"},
	{Field: cndata.FldLowPrice, Src: "low"},
	{Field: cndata.FldClosePrice, Src: "close"},
	{Field: cndata.FldPreSettlePrice, Src: "lastClear"},
	{Field: cndata.FldSettlePrice, Src: "clearPrice"},
	{Field: cndata.FldVolume, Src: "volumn"},
	{Field: cndata.FldTurnover, Src: "turnover", Scale: utils.TenThousand},
	{Field: cndata.FldOpenInterest, Src: "openInterest"},
}

const srcID = "_ID"
