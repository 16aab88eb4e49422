package cninfo

import (
	"github.com/banbox/cndata"
)

const (
	HostWebApi = "webapi"
	HostWww    = "www"
)

const (
	MethodSpiderCheck = "spidercheck"
	MethodStockDay    = "p_sysapi1007"
	MethodMemoQuery   = "memo_query"
)

// ParamExchange selects the listing exchange of stock eod: sse (default) or szse
const ParamExchange = "exchange"

var exchangeCodes = map[string]string{
	"sse":  "SHE",
	"szse": "SZE",
}

const srcDay = "_DAY"

var stockSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "证券代码"},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldPreClosePrice, Src: "前收盘价", Optional: true},
	{Field: cndata.FldOpenPrice, Src: "开盘价"},
	{Field: cndata.FldHighPrice, Src: "最高价"},
	{Field: cndata.FldLowPrice, Src: "最低价"},
	{Field: cndata.FldClosePrice, Src: "收盘价"},
	{Field: cndata.FldVolume, Src: "成交数量"},
	{Field: cndata.FldTurnover, Src: "成交金额"},
}
