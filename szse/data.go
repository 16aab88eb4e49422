package szse

import (
	"regexp"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/utils"
	"github.com/shopspring/decimal"
)

const (
	HostMain = "main"
)

const (
	MethodReport = "report"
)

const (
	catalogSnapshot = "1815_stock_snapshot"
	catalogOption   = "option_drhy"

	archiveDate       = "2021-07-01"
	archiveDateOption = "2021-08-02"
)

var (
	reCode       = regexp.MustCompile(`^\d+$`)
	reUnderlying = regexp.MustCompile(`[(（](\d+)[)）]`)
	optionTick   = decimal.RequireFromString("0.0001")
)

var tabs = map[string]*snapshotTab{
	cndata.MarketStock: {Key: "tab1", Code: "证券代码", ArchiveDate: archiveDate, Specs: []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "证券代码"},
		{Field: cndata.FldTradingDay, Src: "交易日期", Rule: cndata.RuleDate},
		{Field: cndata.FldPreClosePrice, Src: "前收"},
		{Field: cndata.FldOpenPrice, Src: "开盘"},
		{Field: cndata.FldHighPrice, Src: "最高"},
		{Field: cndata.FldLowPrice, Src: "最低"},
		{Field: cndata.FldClosePrice, Src: "今收"},
		{Field: cndata.FldVolume, Src: "成交量(万股)", Scale: utils.TenThousand},
		{Field: cndata.FldTurnover, Src: "成交金额(万元)", Scale: utils.TenThousand},
	}},
	cndata.MarketFund: {Key: "tab2", Code: "证券代码", ArchiveDate: archiveDate, Specs: []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "证券代码"},
		{Field: cndata.FldTradingDay, Src: "交易日期", Rule: cndata.RuleDate},
		{Field: cndata.FldPreClosePrice, Src: "前收"},
		{Field: cndata.FldOpenPrice, Src: "开盘"},
		{Field: cndata.FldHighPrice, Src: "最高"},
		{Field: cndata.FldLowPrice, Src: "最低"},
		{Field: cndata.FldClosePrice, Src: "今收"},
		{Field: cndata.FldVolume, Src: "成交量（万份）", Scale: utils.TenThousand},
		{Field: cndata.FldTurnover, Src: "成交金额(万元)", Scale: utils.TenThousand},
	}},
	cndata.MarketBond: {Key: "tab3", Code: "证券代码", ArchiveDate: archiveDate, Specs: []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "证券代码"},
		{Field: cndata.FldTradingDay, Src: "交易日期", Rule: cndata.RuleDate},
		{Field: cndata.FldPreClosePrice, Src: "前收"},
		{Field: cndata.FldOpenPrice, Src: "开盘"},
		{Field: cndata.FldHighPrice, Src: "最高"},
		{Field: cndata.FldLowPrice, Src: "最低"},
		{Field: cndata.FldClosePrice, Src: "今收"},
		{Field: cndata.FldTurnover, Src: "成交金额(万元)", Scale: utils.TenThousand},
	}},
	cndata.MarketRepo: {Key: "tab4", Code: "证券代码", ArchiveDate: archiveDate, Specs: []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "证券代码"},
		{Field: cndata.FldTradingDay, Src: "交易日期", Rule: cndata.RuleDate},
		{Field: cndata.FldPreClosePrice, Src: "前收"},
		{Field: cndata.FldClosePrice, Src: "今收"},
		{Field: cndata.FldTurnover, Src: "成交金额(万元)", Scale: utils.TenThousand},
	}},
	cndata.MarketOption: {Key: "tab6", Code: "合约编码", ArchiveDate: archiveDateOption, Specs: []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "合约编码"},
		{Field: cndata.FldTradingDay, Src: "交易日期", Rule: cndata.RuleDate},
		{Field: cndata.FldPreSettlePrice, Src: "前结算价"},
		{Field: cndata.FldClosePrice, Src: "今收盘价"},
		{Field: cndata.FldSettlePrice, Src: "今结算价"},
		{Field: cndata.FldVolume, Src: "成交量（张）"},
	}},
	cndata.MarketIndex: {Key: "tab7", Code: "指数代码", ArchiveDate: archiveDate, Specs: []cndata.ColSpec{
		{Field: cndata.FldInstrumentID, Src: "指数代码"},
		{Field: cndata.FldTradingDay, Src: "交易日期", Rule: cndata.RuleDate},
		{Field: cndata.FldPreClosePrice, Src: "前收"},
		{Field: cndata.FldOpenPrice, Src: "开盘"},
		{Field: cndata.FldHighPrice, Src: "最高"},
		{Field: cndata.FldLowPrice, Src: "最低"},
		{Field: cndata.FldClosePrice, Src: "今收"},
		{Field: cndata.FldTurnover, Src: "成交金额(亿元)", Scale: utils.HundredMillion},
	}},
}

var optionRefSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "合约编码"},
	{Field: cndata.FldName, Src: "合约简称", Optional: true},
	{Field: cndata.FldUnit, Src: "合约单位"},
	{Field: cndata.FldStrikePrice, Src: "行权价"},
	{Field: cndata.FldUpperLimitPrice, Src: "涨停价", Optional: true},
	{Field: cndata.FldLowerLimitPrice, Src: "跌停价", Optional: true},
	{Field: cndata.FldLastTradingDay, Src: "最后交易日", Rule: cndata.RuleDate},
	{Field: cndata.FldLastDeliveryDay, Src: "交收日", Rule: cndata.RuleDate, Optional: true},
}

var callPuts = map[string]string{
	"认购": cndata.CallOpt,
	"认沽": cndata.PutOpt,
}
