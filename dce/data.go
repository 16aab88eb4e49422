package dce

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/utils"
)

const (
	HostMain = "main"
)

const (
	MethodContractInfo = "contract_info"
	MethodDayTradePara = "day_trade_para"
	MethodDayQuotes    = "day_quotes"
)

// trade_type form values
const (
	tradeFutures = "0"
	tradeOption  = "1"
)

// queryContractInfo carries a single header row; columns are positional
var infoCols = []string{"Variety", "InstrumentID", "Unit", "TickSize", "FirstTradingDay", "LastTradingDay", "LastDeliveryDay"}

var infoSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "InstrumentID"},
	{Field: cndata.FldUnit, Src: "Unit"},
	{Field: cndata.FldTickSize, Src: "TickSize"},
	{Field: cndata.FldFirstTradingDay, Src: "FirstTradingDay", Rule: cndata.RuleDate},
	{Field: cndata.FldLastTradingDay, Src: "LastTradingDay", Rule: cndata.RuleDate},
	{Field: cndata.FldLastDeliveryDay, Src: "LastDeliveryDay", Rule: cndata.RuleDate},
}

// columns of queryDayTradPara after joining the two header levels
const (
	colParaID    = "合约_合约"
	colParaUpper = "涨跌停板_涨停板价位(元)"
	colParaLower = "涨跌停板_跌停板价位(元)"
	colParaLimit = "持仓限额(手)_客 户"
)

var futureEodCols = []string{
	"Variety", "InstrumentID", "OpenPrice", "HighPrice", "LowPrice", "ClosePrice", "PreSettlePrice", "SettlePrice",
	"Change", "Change1", "Volume", "OpenInterest", "OpenInterestChange", "Turnover",
}

var optionEodCols = []string{
	"Variety", "InstrumentID", "OpenPrice", "HighPrice", "LowPrice", "ClosePrice", "PreSettlePrice", "SettlePrice",
	"Change", "Change1", "Delta", "Volume", "OpenInterest", "OpenInterestChange", "Turnover", "ExecAmount",
}

// day field is filled from the request date
const srcDay = "_DAY"

func eodSpecs(ohlRule int) []cndata.ColSpec {
	return []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "InstrumentID"},
		{Field: cndata.FldTradingDay, Src: srcDay},
		{Field: cndata.FldOpenPrice, Src: "OpenPrice", Rule: ohlRule},
		{Field: cndata.FldHighPrice, Src: "HighPrice", Rule: ohlRule},
		{Field: cndata.FldLowPrice, Src: "LowPrice", Rule: ohlRule},
		{Field: cndata.FldClosePrice, Src: "ClosePrice"},
		{Field: cndata.FldPreSettlePrice, Src: "PreSettlePrice"},
		{Field: cndata.FldSettlePrice, Src: "SettlePrice"},
		{Field: cndata.FldVolume, Src: "Volume"},
		{Field: cndata.FldTurnover, Src: "Turnover", Scale: utils.TenThousand},
		{Field: cndata.FldOpenInterest, Src: "OpenInterest"},
	}
}

var (
	futureEodSpecs = eodSpecs(cndata.RuleNull)
	// untraded options show "-" for OHL
	optionEodSpecs = eodSpecs(cndata.RuleZero)
)
