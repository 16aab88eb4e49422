package hkex

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
	"github.com/h2non/gock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	host       = "https://sc.hkex.com.hk"
	reportPath = "/TuniS/www.hkex.com.hk/eng/stat/dmstat/dayrpt/"
)

func getExg(t *testing.T) *HKEX {
	exg, err := New(map[string]interface{}{cndata.OptRetryWait: 0})
	require.Nil(t, err)
	gock.InterceptClient(exg.HttpClient)
	return exg
}

func dec(text string) decimal.Decimal {
	return decimal.RequireFromString(text)
}

func gbkFile(t *testing.T, path string) *bytes.Reader {
	data, err := os.ReadFile(path)
	require.Nil(t, err)
	out, err := utils.EncodeGBK(string(data))
	require.Nil(t, err)
	return bytes.NewReader(out)
}

func TestStockEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Get("/gb/www.hkex.com.hk/chi/stat/smstat/dayquot/d230728c.htm").
		Reply(200).Body(gbkFile(t, "testdata/quote_230728.txt"))

	res, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"00001", "00005", "00700", "09988"}, res.IDs())

	ckh := res[0]
	assert.Equal(t, "20230728", ckh.TradingDay)
	assert.Equal(t, "HKD", ckh.Currency)
	assert.True(t, ckh.PreClosePrice.Decimal.Equal(dec("43.10")))
	assert.True(t, ckh.BidPrice.Decimal.Equal(dec("43.20")))
	assert.True(t, ckh.AskPrice.Decimal.Equal(dec("43.25")))
	assert.True(t, ckh.OpenPrice.Decimal.Equal(dec("43.20")))
	assert.True(t, ckh.Volume.Decimal.Equal(dec("1775000")))
	assert.True(t, ckh.Turnover.Decimal.Equal(dec("76638555")))

	// the first plain sales record sets the open price
	assert.True(t, res[1].OpenPrice.Decimal.Equal(dec("60.35")))
	tencent := res[2]
	assert.True(t, tencent.OpenPrice.Valid)
	assert.True(t, tencent.OpenPrice.Decimal.IsZero())
	assert.True(t, tencent.BidPrice.Decimal.IsZero())
	assert.True(t, tencent.AskPrice.Decimal.IsZero())

	halted := res[3]
	assert.Equal(t, "HKD", halted.Currency)
	assert.True(t, halted.ClosePrice.Decimal.IsZero())
	assert.True(t, halted.PreClosePrice.Decimal.IsZero())
	assert.True(t, gock.IsDone())
}

func TestStockEodLayoutChanged(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Get("/gb/www.hkex.com.hk/chi/stat/smstat/dayquot/d230729c.htm").
		Reply(200).BodyString("<html>no trading</html>")

	_, err := exg.FetchEod(context.Background(), cndata.MarketStock, "20230729", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeInvalidResponse, err.Code)
}

func TestFutureEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Get("/gb/www.hkex.com.hk/chi/market/rm/rm_dcrm/riskdata/margin_hkcc/mertc_hkcc_230728.htm").
		Reply(200).File("testdata/margin_list.htm")
	gock.New(host).Get(reportPath + "HSIf230728.htm").Reply(200).File("testdata/hsif.htm")
	gock.New(host).Get(reportPath + "CHHf230728.htm").Reply(200).File("testdata/chhf.htm")
	gock.New(host).Get(reportPath + "stock230728.htm").Reply(200).File("testdata/stockf.htm")
	// HHI, MBI and the other block reports are not published on the day
	gock.New(host).Get(reportPath).Persist().Reply(404)

	res, err := exg.FetchEod(context.Background(), cndata.MarketFutures, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"HSI2307", "HSI2308", "CHH2307", "HKB2307", "HKB2308", "TCH2307"}, res.IDs())

	jul := res[0]
	assert.True(t, jul.OpenPrice.Decimal.Equal(dec("19810")))
	assert.True(t, jul.HighPrice.Decimal.Equal(dec("20120")))
	assert.True(t, jul.LowPrice.Decimal.Equal(dec("19700")))
	assert.True(t, jul.ClosePrice.Decimal.Equal(dec("20078")))
	assert.True(t, jul.SettlePrice.Decimal.Equal(dec("20078")))
	assert.True(t, jul.Volume.Decimal.Equal(dec("111110")))
	assert.True(t, jul.OpenInterest.Decimal.Equal(dec("123456")))

	// no after-hours trades: day session only
	aug := res[1]
	assert.True(t, aug.OpenPrice.Decimal.Equal(dec("19950")))
	assert.True(t, aug.LowPrice.Decimal.Equal(dec("19900")))
	assert.True(t, aug.Volume.Decimal.Equal(dec("1234")))

	assert.True(t, res[2].Volume.Decimal.Equal(dec("321")))
	assert.True(t, res[4].OpenPrice.Decimal.IsZero())
	assert.True(t, res[4].SettlePrice.Decimal.Equal(dec("60.4")))
	assert.True(t, res[5].OpenInterest.Decimal.Equal(dec("3333")))
}

func TestFutureEodProduct(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Get("/gb/www.hkex.com.hk/chi/market/rm/rm_dcrm/riskdata/margin_hkcc/mertc_hkcc_230728.htm").
		Reply(200).File("testdata/margin_list.htm")
	gock.New(host).Get(reportPath + "CHHf230728.htm").Reply(200).File("testdata/chhf.htm")

	params := map[string]interface{}{cndata.ParamProduct: "CHH"}
	res, err := exg.FetchEod(context.Background(), cndata.MarketFutures, "20230728", params)
	require.Nil(t, err)
	assert.Equal(t, []string{"CHH2307"}, res.IDs())
	assert.True(t, gock.IsDone())
}

func TestOptionEod(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Get(reportPath + "hsio230728.htm").Reply(200).File("testdata/hsio.htm")
	gock.New(host).Get(reportPath + "mtwo230728.htm").Reply(200).File("testdata/mtwo.htm")
	gock.New(host).Get(reportPath + "dqe230728.htm").Reply(200).File("testdata/dqe.htm")
	gock.New(host).Get(reportPath).Persist().Reply(404)

	res, err := exg.FetchEod(context.Background(), cndata.MarketOption, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"CKH2307C42.50", "CKH2307P42.50", "HSI2307C20000", "HSI2307P20000",
		"HSI2307W28C19800", "MTW2308C42.00"}, res.IDs())

	byID := res.Index()
	call := byID["HSI2307C20000"]
	assert.True(t, call.OpenPrice.Decimal.Equal(dec("120")))
	assert.True(t, call.HighPrice.Decimal.Equal(dec("200")))
	assert.True(t, call.LowPrice.Decimal.Equal(dec("100")))
	assert.True(t, call.Volume.Decimal.Equal(dec("350")))
	assert.True(t, call.SettlePrice.Decimal.Equal(dec("178")))
	assert.True(t, call.OpenInterest.Decimal.Equal(dec("1000")))

	put := byID["HSI2307P20000"]
	assert.True(t, put.OpenPrice.Decimal.Equal(dec("60")))
	assert.True(t, put.LowPrice.Decimal.Equal(dec("50")))
	assert.True(t, put.Volume.Decimal.Equal(dec("120")))

	weekly := byID["HSI2307W28C19800"]
	assert.True(t, weekly.SettlePrice.Decimal.Equal(dec("290")))
	assert.True(t, weekly.OpenInterest.Decimal.Equal(dec("40")))

	assert.True(t, byID["CKH2307P42.50"].OpenPrice.Decimal.IsZero())
	assert.True(t, byID["MTW2308C42.00"].ClosePrice.Decimal.Equal(dec("1.15")))
}

func TestSecurities(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	data, err_ := utils.BuildXlsx([][]interface{}{
		{"證券名單"},
		{"更新日期: 28/07/2023"},
		{"股份代號", "股份名稱", "分類", "次分類", "買賣單位"},
		{1, "長和", "股本", "股本證券(主板)", "500"},
		{5, "滙豐控股", "股本", "股本證券(主板)", "400"},
		{4338, "港府綠債2408", "債務證券", "債務證券", "10"},
	})
	require.Nil(t, err_)
	gock.New(host).Get("/TuniS/www.hkex.com.hk/chi/services/trading/securities/securitieslists/ListOfSecurities_c.xlsx").
		Times(2).Reply(200).Body(bytes.NewReader(data))

	res, err := exg.FetchReference(context.Background(), cndata.MarketStock, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"00001", "00005", "04338"}, res.IDs())
	assert.Equal(t, "長和", res[0].Name)
	assert.True(t, res[0].Unit.Decimal.Equal(dec("500")))

	params := map[string]interface{}{cndata.ParamProduct: "股本"}
	res, err = exg.FetchReference(context.Background(), cndata.MarketStock, "20230728", params)
	require.Nil(t, err)
	assert.Equal(t, []string{"00001", "00005"}, res.IDs())
}
