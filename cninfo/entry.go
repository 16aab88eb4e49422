package cninfo

import (
	"net/http/cookiejar"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*CNINFO, *errs.Error) {
	exg := &CNINFO{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "cninfo",
				Name:      "CNINFO",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostWebApi: "http://webapi.cninfo.com.cn",
					HostWww:    "http://www.cninfo.com.cn",
				},
				Www: "http://www.cninfo.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodSpiderCheck: {Path: "api/spidercheck", Host: HostWebApi, Method: cndata.MethodPost},
				MethodStockDay: {Path: "api/sysapi/p_sysapi1007", Host: HostWebApi,
					Method: cndata.MethodPost, Body: cndata.BodyJson},
				MethodMemoQuery: {Path: "new/information/memoQuery", Host: HostWww,
					Method: cndata.MethodPost, Body: cndata.BodyForm},
			},
			Has: map[string]map[string]int{
				cndata.MarketStock: {cndata.ApiEod: cndata.HasOk},
			},
			Options: Options,
		},
	}
	err := exg.Init()
	if err != nil {
		return nil, err
	}
	// the api accepts data requests after a spidercheck of the same session
	exg.HttpClient.Jar, _ = cookiejar.New(nil)
	return exg, nil
}

func NewExchange(Options map[string]interface{}) (cndata.DataSource, *errs.Error) {
	return New(Options)
}
