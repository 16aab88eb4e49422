package cninfo

import (
	"context"
	"testing"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/h2non/gock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	webApi = "http://webapi.cninfo.com.cn"
	www    = "http://www.cninfo.com.cn"
)

func getExg(t *testing.T) *CNINFO {
	exg, err := New(map[string]interface{}{cndata.OptRetryWait: 0})
	require.Nil(t, err)
	gock.InterceptClient(exg.HttpClient)
	return exg
}

func TestStockEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(webApi).Post("/api/spidercheck").Reply(200).BodyString("ok")
	gock.New(webApi).Post("/api/sysapi/p_sysapi1007").
		BodyString(`"tdate":"2023-07-28"`).
		Reply(200).File("testdata/stock_day.json")

	res, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"600000", "600004", "600010"}, res.IDs())
	row := res[0]
	assert.Equal(t, "20230728", row.TradingDay)
	assert.True(t, row.PreClosePrice.Decimal.Equal(decimal.RequireFromString("7.31")))
	assert.True(t, row.ClosePrice.Decimal.Equal(decimal.RequireFromString("7.46")))
	assert.True(t, row.Volume.Decimal.Equal(decimal.NewFromInt(38726341)))
	assert.True(t, row.Turnover.Decimal.Equal(decimal.NewFromInt(287455821)))
	// suspended: prices not published
	assert.False(t, res[2].OpenPrice.Valid)
	assert.True(t, res[2].ClosePrice.Valid)
	assert.True(t, gock.IsDone())
}

func TestStockEodSzse(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(webApi).Post("/api/spidercheck").Reply(500)
	gock.New(webApi).Post("/api/sysapi/p_sysapi1007").
		BodyString(`"market":"SZE"`).
		Reply(200).BodyString(`{"resultmsg":"success","records":[],"resultcode":200,"total":0}`)

	params := map[string]interface{}{ParamExchange: "szse"}
	res, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230729", params)
	require.Nil(t, err)
	assert.Empty(t, res)
	assert.True(t, gock.IsDone())
}

func TestStockEodRefused(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(webApi).Post("/api/spidercheck").Reply(200)
	gock.New(webApi).Post("/api/sysapi/p_sysapi1007").
		Reply(200).BodyString(`{"resultmsg":"access denied","resultcode":401}`)

	_, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230728", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeInvalidResponse, err.Code)
}

func TestStockEodBadParams(t *testing.T) {
	exg := getExg(t)
	params := map[string]interface{}{ParamExchange: "bse"}
	_, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230728", params)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeParamInvalid, err.Code)
	_, err = exg.FetchEod(context.Background(), cndata.MarketStock, "2023-07-28", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeParamInvalid, err.Code)
	_, err = exg.FetchEod(context.Background(), cndata.MarketFund, "20230728", nil)
	assert.Equal(t, errs.UnsupportMarket, err)
}

func TestNotices(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(www).Post("/new/information/memoQuery").
		MatchType("url").
		BodyString(`queryDate=2023-07-28`).
		Reply(200).File("testdata/memo.json")

	res, err := exg.FetchNotices(context.Background(), "20230728")
	require.Nil(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "停牌", res[0].Category)
	require.Len(t, res[0].Items, 1)
	assert.Equal(t, "600010", res[0].Items[0]["obSeccode0110"])
	assert.Len(t, res[1].Items, 2)
	assert.Equal(t, "分红转增", res[2].Category)
	assert.Empty(t, res[2].Items)
	assert.True(t, gock.IsDone())
}

func TestNoticesLayoutChanged(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(www).Post("/new/information/memoQuery").
		Reply(200).BodyString(`{"classifiedAnnouncements":[]}`)

	_, err := exg.FetchNotices(context.Background(), "20230728")
	require.NotNil(t, err)
	assert.True(t, err.Structural())
}
