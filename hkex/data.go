package hkex

import (
	"regexp"

	"github.com/banbox/cndata"
)

const (
	HostMain = "main"
)

const (
	MethodSecurities = "securities"
	MethodStockQuote = "stock_quote"
	MethodMarginList = "margin_list"
	MethodDayReport  = "day_report"
)

const (
	sepSales = "-------------------------------------------------------------------------------"
	sepQuote = "---------------------------------------------------------------------------------------------------------"
	// a page break of the gb mirror, left inside the text blocks
	pageBreak = "</font></pre><pre><font size='1'>"
)

const (
	srcID  = "_ID"
	srcDay = "_DAY"
)

var months = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04", "MAY": "05", "JUN": "06",
	"JUL": "07", "AUG": "08", "SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

var (
	reQuoteLine  = regexp.MustCompile(`^\s*(\d+)`)
	reSalesTrade = regexp.MustCompile(`^([A-Z]?)\d+-(\d+(?:\.\d+)?)$`)
	reFutMonth   = regexp.MustCompile(`^([A-Z]{3})-(\d{2})$`)
	// JUL-23, JUL23, weekly 28-JUL-23
	reOptMonth    = regexp.MustCompile(`^(?:(\d{1,2})-)?([A-Z]{3})-?(\d{2})$`)
	reBlockCode   = regexp.MustCompile(`\(([A-Z0-9]+)\)`)
	reProductCode = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,5}$`)
)

// sales records with these condition marks do not set the open price
var skipMarks = map[string]bool{"P": true, "D": true, "Y": true}

var (
	futureCols = []string{"open", "high", "low", "settle", "settle_chg", "volume", "oi", "oi_chg"}
	rangeCols  = []string{"open", "high", "low", "settle", "settle_chg", "contract_high", "contract_low",
		"volume", "oi", "oi_chg"}
	sessionCols = []string{"aht_open", "aht_high", "aht_low", "aht_close", "aht_volume", "dt_open", "dt_high",
		"dt_low", "dt_volume", "settle", "settle_chg", "contract_high", "contract_low", "combined_volume", "oi", "oi_chg"}
	optionCols        = []string{"strike", "cp", "open", "high", "low", "settle", "settle_chg", "iv", "volume", "oi", "oi_chg"}
	optionSessionCols = []string{"strike", "cp", "aht_open", "aht_high", "aht_low", "aht_close", "aht_volume",
		"dt_open", "dt_high", "dt_low", "settle", "settle_chg", "iv", "dt_volume", "contract_high", "contract_low",
		"combined_volume", "oi", "oi_chg"}
)

var (
	layoutFuture  = &reportLayout{Cols: futureCols}
	layoutRange   = &reportLayout{Cols: rangeCols}
	layoutSession = &reportLayout{Cols: sessionCols}
	layoutOption  = &reportLayout{Cols: optionCols}
	layoutOptSess = &reportLayout{Cols: optionSessionCols}
)

/*
blockReports futures reports listing several underlyings, one block each.
They are always requested besides the products of the margin list.
*/
var blockReports = []*dayReport{
	{Product: "stock", Name: "stock", Layout: &reportLayout{Cols: futureCols, Header: "MULTIPLIER"}},
	{Product: "hibor", Name: "hibor", Layout: &reportLayout{Cols: rangeCols, Header: "HIBOR"}},
	{Product: "dividend", Name: "dividend", Layout: &reportLayout{Cols: rangeCols, Header: "index"}},
	{Product: "crmbc", Name: "CRMBCF", Layout: &reportLayout{Cols: sessionCols, Header: "Futures"}},
	{Product: "lme", Name: "lmef", Layout: &reportLayout{Cols: sessionCols, Header: "Futures"}},
	{Product: "lmeu", Name: "lmeuf", Layout: &reportLayout{Cols: sessionCols, Header: "Futures"}},
	{Product: "iron", Name: "IRONF", Layout: &reportLayout{Cols: sessionCols, Header: "FUTURES"}},
	{Product: "tri", Name: "trif", Layout: &reportLayout{Cols: sessionCols, Header: "index"}},
	{Product: "hgt", Name: "hgtf", Layout: &reportLayout{Cols: sessionCols, Header: "index"}},
}

// futures reports with one product whose names differ from the product code
var futureNames = map[string]string{
	"MBI": "SECTIDXF",
}

// single product futures without the after-hours session
var rangeFutures = map[string]bool{"CHH": true, "MBI": true, "VHS": true}

var optionReports = []*dayReport{
	{Product: "HSI", Name: "hsio", Layout: layoutOptSess},
	{Product: "PHS", Name: "phso", Layout: layoutOptSess},
	{Product: "HSIW", Name: "hsiwo", Layout: layoutOptSess},
	{Product: "MHI", Name: "mhio", Layout: layoutOptSess},
	{Product: "HTI", Name: "htio", Layout: layoutOptSess},
	{Product: "PTE", Name: "pteo", Layout: layoutOptSess},
	{Product: "HHI", Name: "hhio", Layout: layoutOptSess},
	{Product: "PHH", Name: "phho", Layout: layoutOptSess},
	{Product: "HHIW", Name: "hhiwo", Layout: layoutOptSess},
	{Product: "MCH", Name: "mcho", Layout: layoutOptSess},
	{Product: "MTW", Name: "mtwo", Layout: layoutOption},
	{Product: "CUS", Name: "cuso", Layout: layoutOption},
	{Product: "dqe", Name: "dqe", Layout: &reportLayout{Cols: optionCols, Header: "CLOSING PRICE"}},
}

var quoteSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldCurrency, Src: "currency", Rule: cndata.RuleText},
	{Field: cndata.FldPreClosePrice, Src: "pre_close", Rule: cndata.RuleZero},
	{Field: cndata.FldBidPrice, Src: "bid", Rule: cndata.RuleZero},
	{Field: cndata.FldAskPrice, Src: "ask", Rule: cndata.RuleZero},
	{Field: cndata.FldOpenPrice, Src: "open", Rule: cndata.RuleZero},
	{Field: cndata.FldHighPrice, Src: "high", Rule: cndata.RuleZero},
	{Field: cndata.FldLowPrice, Src: "low", Rule: cndata.RuleZero},
	{Field: cndata.FldClosePrice, Src: "close", Rule: cndata.RuleZero},
	{Field: cndata.FldVolume, Src: "volume", Rule: cndata.RuleZero},
	{Field: cndata.FldTurnover, Src: "turnover", Rule: cndata.RuleZero},
}

// trailing cells of a quotation line
var quoteCols = []string{"currency", "pre_close", "bid", "ask", "high", "low", "close", "volume", "turnover"}

// closing price of derivatives is the settlement price
var reportSpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: srcID},
	{Field: cndata.FldTradingDay, Src: srcDay},
	{Field: cndata.FldOpenPrice, Src: "open", Rule: cndata.RuleZero},
	{Field: cndata.FldHighPrice, Src: "high", Rule: cndata.RuleZero},
	{Field: cndata.FldLowPrice, Src: "low", Rule: cndata.RuleZero},
	{Field: cndata.FldClosePrice, Src: "settle", Rule: cndata.RuleZero},
	{Field: cndata.FldSettlePrice, Src: "settle", Rule: cndata.RuleZero},
	{Field: cndata.FldVolume, Src: "volume", Rule: cndata.RuleZero},
	{Field: cndata.FldOpenInterest, Src: "oi", Rule: cndata.RuleZero},
}

var securitySpecs = []cndata.ColSpec{
	{Field: cndata.FldInstrumentID, Src: "股份代號"},
	{Field: cndata.FldName, Src: "股份名稱", Optional: true},
	{Field: cndata.FldProductID, Src: "分類", Optional: true},
	{Field: cndata.FldUnit, Src: "買賣單位", Optional: true},
}
