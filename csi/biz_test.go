package csi

import (
	"context"
	"testing"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const host = "https://www.csindex.com.cn"

func getExg(t *testing.T) *CSI {
	exg, err := New(map[string]interface{}{cndata.OptRetryWait: 0})
	require.Nil(t, err)
	gock.InterceptClient(exg.HttpClient)
	return exg
}

func TestIndexRef(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/csindex-home/index-list/query-index-item").
		MatchType("json").
		BodyString(`"pageSize":5000`).
		Reply(200).File("testdata/index_list.json")

	res, err := exg.FetchReference(context.Background(), cndata.MarketIndex, "20230728", nil)
	require.Nil(t, err)
	require.Equal(t, []string{"000016", "000300", "000905", "H30533"}, res.IDs())
	assert.Equal(t, "沪深300", res[1].Name)
	assert.Equal(t, "20050408", res[1].FirstTradingDay)
	assert.Equal(t, "", res[0].FirstTradingDay)
	assert.Equal(t, "4", res[3].ProductID)
	assert.True(t, gock.IsDone())
}

func TestIndexRefSeries(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/csindex-home/index-list/query-index-item").
		Reply(200).File("testdata/index_list.json")

	params := map[string]interface{}{cndata.ParamProduct: "4"}
	res, err := exg.FetchReference(context.Background(), cndata.MarketIndex, "20230728", params)
	require.Nil(t, err)
	assert.Equal(t, []string{"H30533"}, res.IDs())
}

func TestIndexRefRefused(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	exg := getExg(t)
	gock.New(host).Post("/csindex-home/index-list/query-index-item").
		Reply(200).BodyString(`{"code":"500","msg":"busy","data":null,"success":false}`)

	_, err := exg.FetchReference(context.Background(), cndata.MarketIndex, "20230728", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeInvalidResponse, err.Code)
}

func TestUnsupported(t *testing.T) {
	exg := getExg(t)
	_, err := exg.FetchReference(context.Background(), cndata.MarketStock, "20230728", nil)
	assert.Equal(t, errs.UnsupportMarket, err)
	_, err = exg.FetchEod(context.Background(), cndata.MarketIndex, "20230728", nil)
	assert.NotNil(t, err)
}
