package shfe

import (
	"context"
	"testing"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/calendar"
	"github.com/banbox/cndata/errs"
	"github.com/h2non/gock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const host = "https://www.shfe.com.cn"

func getExg(t *testing.T, withCal bool) *SHFE {
	options := map[string]interface{}{cndata.OptRetryWait: 0}
	if withCal {
		cal, err := calendar.New([]string{"20230726", "20230727", "20230728", "20230731"})
		require.Nil(t, err)
		options[cndata.OptCalendar] = cal
	}
	exg, err := New(options)
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
	exg := getExg(t, true)
	gock.New(host).Get("/data/instrument/ContractBaseInfo20230728.dat").Reply(200).File("testdata/future_base.json")
	gock.New(host).Get("/data/instrument/ContractDailyTradeArgument20230728.dat").Reply(200).File("testdata/future_args.json")
	gock.New(host).Get("/data/dailydata/kx/kx20230727.dat").Reply(200).File("testdata/kx_pre.json")

	res, err := exg.FetchReference(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	// rb2401 has no trade arguments
	require.Equal(t, []string{"cu2308", "au2310"}, res.IDs())

	cu := res[0]
	assert.Equal(t, "cu", cu.ProductID)
	assert.True(t, cu.Unit.Decimal.Equal(dec("5")))
	assert.True(t, cu.TickSize.Decimal.Equal(dec("10")))
	assert.True(t, cu.ListPrice.Decimal.Equal(dec("67890")))
	// previous settlement 69500 with 7% limits
	assert.True(t, cu.UpperLimitPrice.Decimal.Equal(dec("74360")))
	assert.True(t, cu.LowerLimitPrice.Decimal.Equal(dec("64630")))
	assert.False(t, cu.PositionLimit.Valid)
	assert.Equal(t, "20230822", cu.LastDeliveryDay)
	assert.Equal(t, "20230815", cu.LastTradingDay)

	// no previous settlement: list price 452.34 with 8% limits on a 0.02 tick
	au := res[1]
	assert.True(t, au.UpperLimitPrice.Decimal.Equal(dec("488.52")))
	assert.True(t, au.LowerLimitPrice.Decimal.Equal(dec("416.14")))
	assert.True(t, gock.IsDone())
}

func TestFutureRefNeedCalendar(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t, false)
	_, err := exg.FetchReference(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeParamRequired, err.Code)

	exg = getExg(t, true)
	_, err = exg.FetchReference(context.Background(), cndata.MarketFutures, "20230729", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeUnknownDay, err.Code)
}

func TestFutureEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t, false)
	gock.New(host).Get("/data/dailydata/kx/kx20230728.dat").Times(2).Reply(200).File("testdata/kx.json")

	ctx := context.Background()
	res, err := exg.FetchEod(ctx, cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	// subtotal and untraded rows carry no settlement
	assert.Equal(t, []string{"cu2308", "au2310"}, res.IDs())
	cu := res[0]
	assert.Equal(t, "20230728", cu.TradingDay)
	assert.True(t, cu.SettlePrice.Decimal.Equal(dec("69600")))
	assert.True(t, cu.Turnover.Decimal.Equal(dec("1234567800")))
	assert.True(t, res[1].Turnover.Decimal.Equal(dec("91234567000")))

	res, err = exg.FetchEod(ctx, cndata.MarketFutures, "20230728", map[string]interface{}{cndata.ParamProduct: "au"})
	require.Nil(t, err)
	assert.Equal(t, []string{"au2310"}, res.IDs())
}

func TestOptionRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t, false)
	gock.New(host).Get("/data/instrument/option/ContractBaseInfo20230728.dat").Reply(200).File("testdata/option_base.json")
	gock.New(host).Get("/data/instrument/option/ContractDailyTradeArgument20230728.dat").Reply(200).File("testdata/option_args.json")

	res, err := exg.FetchReference(context.Background(), cndata.MarketOption, "20230728", map[string]interface{}{cndata.ParamProduct: "cu"})
	require.Nil(t, err)
	require.Len(t, res, 2)
	call, put := res[0], res[1]
	assert.Equal(t, cndata.CallOpt, call.CallPut)
	assert.Equal(t, "cu2309", call.Underlying)
	assert.True(t, call.StrikePrice.Decimal.Equal(dec("68000")))
	assert.True(t, call.Unit.Decimal.Equal(dec("5")))
	assert.True(t, call.TickSize.Decimal.Equal(dec("2")))
	assert.True(t, call.UpperLimitPrice.Decimal.Equal(dec("6436")))
	assert.Equal(t, cndata.ExecAmerican, call.ExecType)
	assert.Equal(t, cndata.DeliverPhysical, call.DeliveryMethod)
	assert.Equal(t, cndata.PutOpt, put.CallPut)
	assert.Equal(t, "20230825", put.LastTradingDay)
}

func TestOptionEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t, false)
	gock.New(host).Get("/data/dailydata/option/kx/kx20230728.dat").Reply(200).File("testdata/option_kx.json")

	res, err := exg.FetchEod(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"cu2309C68000", "cu2309P68000"}, res.IDs())
	row := res[0]
	// untraded contracts report zero OHL
	assert.True(t, row.OpenPrice.Valid)
	assert.True(t, row.OpenPrice.Decimal.IsZero())
	assert.True(t, row.HighPrice.Decimal.IsZero())
	assert.True(t, res[1].Turnover.Decimal.Equal(dec("216000")))
	for _, r := range res {
		assert.Equal(t, "20230728", r.TradingDay)
	}
}

func TestBadPayload(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t, false)
	gock.New(host).Get("/data/dailydata/kx/kx20230728.dat").Reply(200).BodyString(`{"report_date":"20230728"}`)

	_, err := exg.FetchEod(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.NotNil(t, err)
	assert.True(t, err.Structural())
	_, err = exg.FetchEod(context.Background(), cndata.MarketStock, "20230728", nil)
	assert.Equal(t, errs.CodeUnsupportMarket, err.Code)
}
