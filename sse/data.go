package sse

import (
	"github.com/banbox/cndata"
	"github.com/shopspring/decimal"
)

const (
	HostQuery = "query"
	HostYunhq = "yunhq"
)

const (
	MethodStockList   = "stock_list"
	MethodBondList    = "bond_list"
	MethodFundList    = "fund_list"
	MethodCommonQuery = "common_query"
	MethodSnapshot    = "snapshot"
	MethodDayK        = "dayk"
	MethodExpireMonth = "expire_month"
	MethodTStyle      = "tstyle"
)

const (
	sqlStockList   = "COMMON_SSE_CP_GPJCTPZ_GPLB_GP_L"
	sqlDelistList  = "COMMON_SSE_CP_GPJCTPZ_GPLB_ZZGP_L"
	sqlOptionToday = "SSE_ZQPZ_YSP_GGQQZSXT_XXPL_DRHY_SEARCH_L"
	sqlRepoList    = "COMMON_SSE_ZQPZ_ZQLB_ZQHGLB_TOTAL"
)

// main board and STAR market
var stockTypes = []string{"1", "8"}

// synthetic columns added to records before mapping
const (
	srcID  = "_ID"
	srcDay = "_DAY"
)

var optionTick = decimal.RequireFromString("0.0001")

// Select is also the column order of the list rows, after the code
type snapshotArgs struct {
	Board  string
	Kind   string
	Select []string
}

var tradeCols = []string{"open", "high", "low", "last", "volume", "amount"}

var snapshots = map[string]*snapshotArgs{
	cndata.MarketStock: {Board: "sh1", Kind: "equity", Select: tradeCols},
	cndata.MarketBond:  {Board: "shb1", Kind: "all", Select: tradeCols},
	cndata.MarketFund:  {Board: "sh1", Kind: "fwr", Select: tradeCols},
	cndata.MarketIndex: {Board: "sh1", Kind: "index",
		Select: []string{"prev_close", "open", "high", "low", "last", "volume", "amount"}},
}

// dayk boards of markets with per-instrument history
var dayBoards = map[string]string{
	cndata.MarketStock: "sh1",
	cndata.MarketBond:  "shb1",
	cndata.MarketFund:  "sh1",
	cndata.MarketRepo:  "shb1",
}

var klineCols = []string{srcDay, "open", "high", "low", "last", "volume", "amount"}

var tradeSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldPreClosePrice, Src: "prev_close", Optional: true},
	{Field: cndata.FldOpenPrice, Src: "open"},
	{Field: cndata.FldHighPrice, Src: "high"},
	{Field: cndata.FldLowPrice, Src: "low"},
	{Field: cndata.FldClosePrice, Src: "last"},
	{Field: cndata.FldVolume, Src: "volume"},
	{Field: cndata.FldTurnover, Src: "amount"},
}

var tstyleCols = []string{srcID, "last", "presetpx"}

var optionEodSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldSettlePrice, Src: "last"},
	{Field: cndata.FldPreSettlePrice, Src: "presetpx"},
}

var stockSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "A股代码"},
	{Field: cndata.FldName, Src: "证券简称", Optional: true},
	{Field: cndata.FldFirstTradingDay, Src: "上市日期", Rule: cndata.RuleDate, Optional: true},
}

var delistSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "原公司代码"},
	{Field: cndata.FldName, Src: "原公司简称", Optional: true},
	{Field: cndata.FldFirstTradingDay, Src: "上市日期", Rule: cndata.RuleDate, Optional: true},
	{Field: cndata.FldLastTradingDay, Src: "终止上市日期", Rule: cndata.RuleDate, Optional: true},
}

var optionRefSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "SECURITY_ID"},
	{Field: cndata.FldName, Src: "CONTRACT_SYMBOL", Optional: true},
	{Field: cndata.FldUnit, Src: "CONTRACT_UNIT"},
	{Field: cndata.FldStrikePrice, Src: "EXERCISE_PRICE"},
	{Field: cndata.FldUpperLimitPrice, Src: "DAILY_PRICE_UPLIMIT", Optional: true},
	{Field: cndata.FldLowerLimitPrice, Src: "DAILY_PRICE_DOWNLIMIT", Optional: true},
	{Field: cndata.FldFirstTradingDay, Src: "START_DATE", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "END_DATE", Rule: cndata.RuleDate},
	{Field: cndata.FldLastDeliveryDay, Src: "DELIVERY_DATE", Rule: cndata.RuleDate, Optional: true},
	{Field: cndata.FldUnderlying, Src: "SECURITY_CODE"},
}

var callPuts = map[string]string{
	"认购": cndata.CallOpt,
	"认沽": cndata.PutOpt,
}
