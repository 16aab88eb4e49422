package cffex

import (
	"github.com/banbox/cndata"
)

const (
	HostMain = "main"
)

const (
	MethodTip          = "tip"
	MethodTradeParams  = "trade_params"
	MethodDailyQuotes  = "daily_quotes"
	MethodMarginIndex  = "margin_index"
	MethodMarginParams = "margin_params"
)

// reference columns of sj/jycs
var refSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "INSTRUMENT_ID"},
	{Field: cndata.FldProductID, Src: "PRODUCT_ID"},
	{Field: cndata.FldListPrice, Src: "BASIS_PRICE"},
	{Field: cndata.FldUpperLimitPrice, Src: "UPPERLIMITPRICE"},
	{Field: cndata.FldLowerLimitPrice, Src: "LOWERLIMITPRICE"},
	{Field: cndata.FldPositionLimit, Src: "LONG_LIMIT"},
	{Field: cndata.FldFirstTradingDay, Src: "OPEN_DATE", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "END_TRADING_DAY", Rule: cndata.RuleDate},
}

var tipSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "INSTRUMENTID"},
	{Field: cndata.FldFirstDeliveryDay, Src: "STARTDELIVDATE", Rule: cndata.RuleDate, Optional: true},
	{Field: cndata.FldLastDeliveryDay, Src: "ENDDELIVDATE", Rule: cndata.RuleDate, Optional: true},
}

// eod columns of sj/hqsj/rtj
var eodSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "instrumentid"},
	{Field: cndata.FldTradingDay, Src: "tradingday"},
	{Field: cndata.FldOpenPrice, Src: "openprice"},
	{Field: cndata.FldHighPrice, Src: "highestprice"},
	{Field: cndata.FldLowPrice, Src: "lowestprice"},
	{Field: cndata.FldClosePrice, Src: "closeprice"},
	{Field: cndata.FldPreSettlePrice, Src: "presettlementprice"},
	{Field: cndata.FldSettlePrice, Src: "settlementprice"},
	{Field: cndata.FldVolume, Src: "volume"},
	{Field: cndata.FldTurnover, Src: "turnover"},
	{Field: cndata.FldOpenInterest, Src: "openinterest"},
}
