package csi

import (
	"github.com/banbox/cndata"
)

const (
	HostHome = "home"
)

const (
	MethodIndexList = "index_list"
)

const pageSize = 5000

// every published index series: size, sector, style, theme, strategy, multi-asset, customized
var indexSeries = []string{"1", "2", "3", "7", "4", "5", "6"}

var indexSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "indexCode"},
	{Field: cndata.FldName, Src: "indexName", Optional: true},
	{Field: cndata.FldProductID, Src: "indexSeries", Optional: true},
	{Field: cndata.FldFirstTradingDay, Src: "publishDate", Rule: cndata.RuleDate, Optional: true},
}
