package shfe

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/utils"
)

const (
	HostMain = "main"
)

const (
	MethodFutureBase  = "future_base"
	MethodFutureArgs  = "future_args"
	MethodFutureDaily = "future_daily"
	MethodOptionBase  = "option_base"
	MethodOptionArgs  = "option_args"
	MethodOptionDaily = "option_daily"
)

const (
	keyFutureBase = "ContractBaseInfo"
	keyFutureArgs = "ContractDailyTradeArgument"
	keyOptionBase = "OptionContractBaseInfo"
	keyOptionArgs = "OptionContractDailyTradeArgument"
	keyDaily      = "o_curinstrument"
)

// synthetic columns added to kx records before mapping
const (
	srcID  = "_ID"
	srcDay = "_DAY"
)

var futureRefSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "INSTRUMENTID"},
	{Field: cndata.FldListPrice, Src: "BASISPRICE"},
	{Field: cndata.FldFirstTradingDay, Src: "OPENDATE", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "EXPIREDATE", Rule: cndata.RuleDate},
	{Field: cndata.FldFirstDeliveryDay, Src: "STARTDELIVDATE", Rule: cndata.RuleDate},
	{Field: cndata.FldLastDeliveryDay, Src: "ENDDELIVDATE", Rule: cndata.RuleDate},
}

var optionRefSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "INSTRUMENTID"},
	{Field: cndata.FldProductID, Src: "COMMODITYID"},
	{Field: cndata.FldUnit, Src: "TRADEUNIT"},
	{Field: cndata.FldTickSize, Src: "PRICETICK"},
	{Field: cndata.FldFirstTradingDay, Src: "OPENDATE", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "EXPIREDATE", Rule: cndata.RuleDate},
}

var futureEodSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldOpenPrice, Src: "OPENPRICE"},
	{Field: cndata.FldHighPrice, Src: "HIGHESTPRICE"},
	{Field: cndata.FldLowPrice, Src: "LOWESTPRICE"},
	{Field: cndata.FldClosePrice, Src: "CLOSEPRICE"},
	{Field: cndata.FldPreSettlePrice, Src: "PRESETTLEMENTPRICE"},
	{Field: cndata.FldSettlePrice, Src: "SETTLEMENTPRICE"},
	{Field: cndata.FldVolume, Src: "VOLUME"},
	{Field: cndata.FldTurnover, Src: "TURNOVER", Scale: utils.TenThousand},
	{Field: cndata.FldOpenInterest, Src: "OPENINTEREST"},
}

// option kx leaves OHL blank for contracts without trades
var optionEodSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldOpenPrice, Src: "OPENPRICE", Rule: cndata.RuleZero},
	{Field: cndata.FldHighPrice, Src: "HIGHESTPRICE", Rule: cndata.RuleZero},
	{Field: cndata.FldLowPrice, Src: "LOWESTPRICE", Rule: cndata.RuleZero},
	{Field: cndata.FldClosePrice, Src: "CLOSEPRICE"},
	{Field: cndata.FldPreSettlePrice, Src: "PRESETTLEMENTPRICE"},
	{Field: cndata.FldSettlePrice, Src: "SETTLEMENTPRICE"},
	{Field: cndata.FldVolume, Src: "VOLUME"},
	{Field: cndata.FldTurnover, Src: "TURNOVER", Scale: utils.TenThousand},
	{Field: cndata.FldOpenInterest, Src: "OPENINTEREST"},
}
