package dce

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

const host = "http://www.dce.com.cn"

func getExg(t *testing.T) *DCE {
	exg, err := New(map[string]interface{}{cndata.OptRetryWait: 0})
	require.Nil(t, err)
	gock.InterceptClient(exg.HttpClient)
	return exg
}

func dec(text string) decimal.Decimal {
	return decimal.RequireFromString(text)
}

func mockRef(kind, infoFile, paraFile string) {
	gock.New(host).Post("/publicweb/businessguidelines/queryContractInfo.html").
		BodyString("contractInformation.trade_type=" + kind).Reply(200).File(infoFile)
	gock.New(host).Post("/publicweb/notificationtips/queryDayTradPara.html").
		BodyString("dayTradingParameters.trade_type=" + kind).Reply(200).File(paraFile)
}

func TestFutureRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockRef("0", "testdata/future_info.html", "testdata/future_para.html")

	res, err := exg.FetchReference(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	// i2310 has no trade parameters
	require.Equal(t, []string{"a2309", "a2311", "i2309"}, res.IDs())
	row := res[0]
	assert.Equal(t, "a", row.ProductID)
	assert.True(t, row.Unit.Decimal.Equal(dec("10")))
	assert.True(t, row.UpperLimitPrice.Decimal.Equal(dec("5378")))
	assert.True(t, row.LowerLimitPrice.Decimal.Equal(dec("4658")))
	assert.True(t, row.PositionLimit.Decimal.Equal(dec("12000")))
	assert.Equal(t, "20230919", row.LastDeliveryDay)
	assert.False(t, res[1].PositionLimit.Valid)
	assert.True(t, res[2].TickSize.Decimal.Equal(dec("0.5")))
}

func TestFutureRefProduct(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockRef("0", "testdata/future_info.html", "testdata/future_para.html")

	res, err := exg.FetchReference(context.Background(), cndata.MarketFutures, "20230728",
		map[string]interface{}{cndata.ParamProduct: "i"})
	require.Nil(t, err)
	assert.Equal(t, []string{"i2309"}, res.IDs())
}

func TestOptionRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	mockRef("1", "testdata/option_info.html", "testdata/option_para.html")

	res, err := exg.FetchReference(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Len(t, res, 2)
	row := res[0]
	assert.Equal(t, "a2309-C-4000", row.InstrumentID)
	assert.Equal(t, "a", row.ProductID)
	assert.Equal(t, "a2309", row.Underlying)
	assert.Equal(t, cndata.CallOpt, row.CallPut)
	assert.True(t, row.StrikePrice.Decimal.Equal(dec("4000")))
	assert.True(t, row.PositionLimit.Decimal.Equal(dec("1000")))
	// no delivery day published: last trading day
	assert.Equal(t, "20230807", row.LastDeliveryDay)
	assert.Equal(t, cndata.ExecAmerican, row.ExecType)
	assert.Equal(t, cndata.DeliverPhysical, row.DeliveryMethod)
	assert.Equal(t, cndata.PutOpt, res[1].CallPut)
}

func TestFutureEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/publicweb/quotesdata/dayQuotesCh.html").
		BodyString(`currDate=20230728&day=28&dayQuotes.trade_type=0&month=6&year=2023`).
		Reply(200).File("testdata/future_quotes.html")

	res, err := exg.FetchEod(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"a2309", "a2311", "i2309"}, res.IDs())
	row := res[0]
	assert.Equal(t, "20230728", row.TradingDay)
	assert.True(t, row.OpenPrice.Decimal.Equal(dec("5020")))
	assert.True(t, row.SettlePrice.Decimal.Equal(dec("5021")))
	assert.True(t, row.Volume.Decimal.Equal(dec("80123")))
	assert.True(t, row.Turnover.Decimal.Equal(dec("4023456700")))
	for _, r := range res {
		assert.Regexp(t, `^\d{8}$`, r.TradingDay)
	}
}

func TestOptionEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/publicweb/quotesdata/dayQuotesCh.html").
		BodyString("dayQuotes.trade_type=1").Reply(200).File("testdata/option_quotes.html")

	res, err := exg.FetchEod(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"a2309-C-4000", "a2309-P-4000"}, res.IDs())
	row := res[0]
	assert.True(t, row.OpenPrice.Valid)
	assert.True(t, row.OpenPrice.Decimal.IsZero())
	assert.True(t, row.LowPrice.Decimal.IsZero())
	assert.True(t, row.SettlePrice.Decimal.Equal(dec("1021.5")))
	assert.True(t, res[1].Turnover.Decimal.Equal(dec("600")))
	assert.True(t, res[1].OpenInterest.Decimal.Equal(dec("300")))
}

func TestEodErrors(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	ctx := context.Background()

	_, err := exg.FetchEod(ctx, cndata.MarketStock, "20230728", nil)
	assert.Equal(t, errs.CodeUnsupportMarket, err.Code)
	_, err = exg.FetchEod(ctx, cndata.MarketFutures, "230728", nil)
	assert.Equal(t, errs.CodeParamInvalid, err.Code)

	gock.New(host).Post("/publicweb/quotesdata/dayQuotesCh.html").Reply(200).BodyString("<html><p>系统繁忙</p></html>")
	_, err = exg.FetchEod(ctx, cndata.MarketFutures, "20230728", nil)
	require.NotNil(t, err)
	assert.True(t, err.Structural())
}
