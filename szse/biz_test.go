package szse

import (
	"bytes"
	"context"
	"testing"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
	"github.com/h2non/gock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const host = "https://www.szse.cn"

func getExg(t *testing.T) *SZSE {
	exg, err := New(map[string]interface{}{cndata.OptRetryWait: 0})
	require.Nil(t, err)
	gock.InterceptClient(exg.HttpClient)
	return exg
}

func dec(text string) decimal.Decimal {
	return decimal.RequireFromString(text)
}

func reportReq(catalog, tab string) *gock.Request {
	return gock.New(host).Get("/api/report/ShowReport").
		MatchParam("CATALOGID", "^"+catalog+"$").
		MatchParam("TABKEY", "^"+tab+"$").
		MatchParam("SHOWTYPE", "xlsx")
}

func mockReport(t *testing.T, catalog, tab string, rows ...[]interface{}) {
	reportReq(catalog, tab).Reply(200).Body(xlsxBody(t, rows))
}

func xlsxBody(t *testing.T, rows [][]interface{}) *bytes.Reader {
	data, err := utils.BuildXlsx(rows)
	require.Nil(t, err)
	return bytes.NewReader(data)
}

func TestStockEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	reportReq(catalogSnapshot, "tab1").
		MatchParam("archiveDate", "^2021-07-01$").
		MatchParam("txtBeginDate", "^2023-07-28$").
		MatchParam("txtEndDate", "^2023-07-28$").
		Reply(200).Body(xlsxBody(t, [][]interface{}{
		{"交易日期", "证券代码", "证券简称", "前收", "开盘", "最高", "最低", "今收", "涨跌幅（%）", "成交量(万股)", "成交金额(万元)", "市盈率"},
		{"2023-07-28", 1, "平安银行", 11.1, 11.2, 11.5, 11.0, "11.35", 2.25, "12,345.67", "140,123.45", 4.5},
		{"2023-07-28", "300750", "宁德时代", 230.12, 231, 236.5, 229.8, 235.55, 2.36, "2,001.5", "470,123.4", 25.1},
	}))

	res, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"000001", "300750"}, res.IDs())
	row := res[0]
	assert.Equal(t, "20230728", row.TradingDay)
	assert.True(t, row.PreClosePrice.Decimal.Equal(dec("11.1")))
	assert.True(t, row.ClosePrice.Decimal.Equal(dec("11.35")))
	assert.True(t, row.Volume.Decimal.Equal(dec("123456700")))
	assert.True(t, row.Turnover.Decimal.Equal(dec("1401234500")))
	assert.True(t, gock.IsDone())
}

func TestRepoEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockReport(t, catalogSnapshot, "tab4",
		[]interface{}{"交易日期", "证券代码", "证券简称", "前收", "今收", "成交金额(万元)"},
		[]interface{}{"2023-07-28", "131810", "R-001", 1.95, 2.01, 1234567.8},
		[]interface{}{"2023-07-28", "", "", "", "", ""},
		[]interface{}{"2023-07-28", "131811", "R-002", 1.9, 1.99, 2345.6},
	)

	res, err := exg.FetchEod(context.Background(), cndata.MarketRepo, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"131810", "131811"}, res.IDs())
	assert.True(t, res[0].Turnover.Decimal.Equal(dec("12345678000")))
	assert.False(t, res[0].OpenPrice.Valid)
}

func TestIndexEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockReport(t, catalogSnapshot, "tab7",
		[]interface{}{"交易日期", "指数代码", "指数简称", "前收", "开盘", "最高", "最低", "今收", "涨跌幅（%）", "成交量(亿股)", "成交金额(亿元)"},
		[]interface{}{"2023-07-28", "399001", "深证成指", 10995.2, 10990.1, 11150.3, 10960.4, 11100.5, 0.96, 350.1, "4,123.45"},
	)

	res, err := exg.FetchEod(context.Background(), cndata.MarketIndex, "20230728", nil)
	require.Nil(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Turnover.Decimal.Equal(dec("412345000000")))
	assert.False(t, res[0].Volume.Valid)
}

func TestNoDataNotice(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockReport(t, catalogSnapshot, "tab3",
		[]interface{}{"交易日期", "证券代码", "证券简称", "前收", "开盘", "最高", "最低", "今收", "成交金额(万元)"},
		[]interface{}{"没有找到符合条件的数据！"},
	)

	res, err := exg.FetchEod(context.Background(), cndata.MarketBond, "20230729", nil)
	require.Nil(t, err)
	assert.Len(t, res, 0)
}

func TestMissingColumn(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockReport(t, catalogSnapshot, "tab2",
		[]interface{}{"交易日期", "证券代码", "前收", "今收"},
		[]interface{}{"2023-07-28", "159919", 4.01, 4.05},
	)

	_, err := exg.FetchEod(context.Background(), cndata.MarketFund, "20230728", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeInvalidResponse, err.Code)
}

func TestOptionRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	head := []interface{}{"合约编码", "合约代码", "合约简称", "标的证券简称(代码)", "合约类型", "行权价", "合约单位",
		"最后交易日", "行权日", "到期日", "交收日", "新挂", "涨停价", "跌停价"}
	mockReport(t, catalogOption, "tab1", head,
		[]interface{}{"90001234", "159919C2308M004000", "300ETF购8月4000", "嘉实沪深300ETF(159919)", "认购", "4.000",
			"10000", "2023-08-23", "2023-08-23", "2023-08-23", "2023-08-24", "否", "0.4523", "0.0001"},
		[]interface{}{"90001301", "159915P2308M002500", "创业板ETF沽8月2500", "易方达创业板ETF(159915)", "认沽", "2.500",
			"10000", "2023-08-23", "2023-08-23", "2023-08-23", "2023-08-24", "是", "0.3012", "0.0001"},
	)

	res, err := exg.FetchReference(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"90001234", "90001301"}, res.IDs())
	row := res[0]
	assert.Equal(t, "159919", row.Underlying)
	assert.Equal(t, cndata.CallOpt, row.CallPut)
	assert.Equal(t, cndata.ExecEuropean, row.ExecType)
	assert.Equal(t, "20230823", row.LastTradingDay)
	assert.Equal(t, "20230824", row.LastDeliveryDay)
	assert.True(t, row.StrikePrice.Decimal.Equal(dec("4")))
	assert.True(t, row.UpperLimitPrice.Decimal.Equal(dec("0.4523")))
	assert.Equal(t, cndata.PutOpt, res[1].CallPut)

	_, err = exg.FetchReference(context.Background(), cndata.MarketStock, "20230728", nil)
	assert.Equal(t, errs.UnsupportMarket, err)
}

func TestOptionEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	reportReq(catalogSnapshot, "tab6").
		MatchParam("archiveDate", "^2021-08-02$").
		MatchParam("txtBeginDate", "^2023-07-28$").
		Reply(200).Body(xlsxBody(t, [][]interface{}{
		{"交易日期", "合约编码", "合约简称", "前结算价", "今开盘价", "今收盘价", "今结算价", "成交量（张）", "持仓量（张）"},
		{"2023-07-28", "90001234", "300ETF购8月4000", 0.0812, 0.0820, 0.1011, 0.1005, 12345, 54321},
	}))

	res, err := exg.FetchEod(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Len(t, res, 1)
	row := res[0]
	assert.Equal(t, "90001234", row.InstrumentID)
	assert.True(t, row.SettlePrice.Decimal.Equal(dec("0.1005")))
	assert.True(t, row.PreSettlePrice.Decimal.Equal(dec("0.0812")))
	assert.True(t, row.Volume.Decimal.Equal(dec("12345")))
	assert.True(t, gock.IsDone())
}
