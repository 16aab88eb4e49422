package gfex

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

const host = "http://www.gfex.com.cn"

func getExg(t *testing.T) *GFEX {
	exg, err := New(map[string]interface{}{cndata.OptRetryWait: 0})
	require.Nil(t, err)
	gock.InterceptClient(exg.HttpClient)
	return exg
}

func dec(text string) decimal.Decimal {
	return decimal.RequireFromString(text)
}

func TestFutureRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/u/interfacesWebTtQueryContractInfo/loadList").BodyString("trade_type=0").
		Reply(200).File("testdata/future_info.json")
	gock.New(host).Post("/u/interfacesWebTtQueryTradPara/loadDayList").BodyString("trade_type=0").
		Reply(200).File("testdata/future_para.json")

	res, err := exg.FetchReference(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	// si2310 has no trade parameters
	require.Equal(t, []string{"si2309", "lc2401"}, res.IDs())
	si := res[0]
	assert.Equal(t, "si", si.ProductID)
	assert.True(t, si.Unit.Decimal.Equal(dec("5")))
	assert.True(t, si.UpperLimitPrice.Decimal.Equal(dec("14720")))
	assert.True(t, si.LowerLimitPrice.Decimal.Equal(dec("12035")))
	assert.True(t, si.PositionLimit.Decimal.Equal(dec("2000")))
	assert.Equal(t, "20230919", si.LastDeliveryDay)
	assert.False(t, res[1].PositionLimit.Valid)
}

func TestOptionRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/u/interfacesWebTtQueryContractInfo/loadList").BodyString("trade_type=1").
		Reply(200).File("testdata/option_info.json")
	gock.New(host).Post("/u/interfacesWebTtQueryTradPara/loadDayList").BodyString("trade_type=1").
		Reply(200).File("testdata/option_para.json")

	res, err := exg.FetchReference(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Len(t, res, 2)
	row := res[0]
	assert.Equal(t, "si2309", row.Underlying)
	assert.Equal(t, cndata.CallOpt, row.CallPut)
	assert.True(t, row.StrikePrice.Decimal.Equal(dec("13000")))
	assert.True(t, row.UpperLimitPrice.Decimal.Equal(dec("1200")))
	assert.Equal(t, "", row.LastDeliveryDay)
	assert.Equal(t, cndata.ExecAmerican, row.ExecType)
	assert.Equal(t, cndata.PutOpt, res[1].CallPut)
}

func TestFutureEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/u/interfacesWebTiDayQuotes/loadList").BodyString("trade_date=20230728&trade_type=0").
		Reply(200).File("testdata/future_quotes.json")

	res, err := exg.FetchEod(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"si2309", "lc2401"}, res.IDs())
	si := res[0]
	assert.Equal(t, "20230728", si.TradingDay)
	assert.True(t, si.SettlePrice.Decimal.Equal(dec("13520")))
	assert.True(t, si.Volume.Decimal.Equal(dec("120345")))
	assert.True(t, si.Turnover.Decimal.Equal(dec("8154327500")))
	assert.True(t, res[1].Turnover.Decimal.Equal(dec("49320000000")))
}

func TestOptionEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/u/interfacesWebTiDayQuotes/loadList").BodyString("trade_type=1").
		Reply(200).File("testdata/option_quotes.json")

	res, err := exg.FetchEod(context.Background(), cndata.MarketOption, "20230728", map[string]interface{}{cndata.ParamProduct: "si"})
	require.Nil(t, err)
	require.Equal(t, []string{"si2309-C-13000"}, res.IDs())
	assert.True(t, res[0].Turnover.Decimal.Equal(dec("378000")))
}

func TestErrors(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	ctx := context.Background()
	_, err := exg.FetchEod(ctx, cndata.MarketIndex, "20230728", nil)
	assert.Equal(t, errs.CodeUnsupportMarket, err.Code)

	gock.New(host).Post("/u/interfacesWebTiDayQuotes/loadList").Reply(200).BodyString(`{"code":"1","msg":"fail"}`)
	_, err = exg.FetchEod(ctx, cndata.MarketFutures, "20230728", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeInvalidResponse, err.Code)
}
