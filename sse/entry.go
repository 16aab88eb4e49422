package sse

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*SSE, *errs.Error) {
	exg := &SSE{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "sse",
				Name:      "Shanghai Stock Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostQuery: "http://query.sse.com.cn",
					HostYunhq: "http://yunhq.sse.com.cn:32041",
				},
				Www: "http://www.sse.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodStockList:   {Path: "sseQuery/commonExcelDd.do", Host: HostQuery},
				MethodBondList:    {Path: "sseQuery/commonSoaQuery.do", Host: HostQuery},
				MethodFundList:    {Path: "commonSoaQuery.do", Host: HostQuery},
				MethodCommonQuery: {Path: "commonQuery.do", Host: HostQuery},
				MethodSnapshot:    {Path: "v1/{board}/list/exchange/{kind}", Host: HostYunhq},
				MethodDayK:        {Path: "v1/{board}/dayk/{code}", Host: HostYunhq},
				MethodExpireMonth: {Path: "v1/sho/list/exchange/stockexpire", Host: HostYunhq},
				MethodTStyle:      {Path: "v1/sho/list/tstyle/{series}", Host: HostYunhq},
			},
			Has: map[string]map[string]int{
				cndata.MarketStock:  {cndata.ApiReference: cndata.HasOk, cndata.ApiEod: cndata.HasOk},
				cndata.MarketBond:   {cndata.ApiEod: cndata.HasOk},
				cndata.MarketFund:   {cndata.ApiEod: cndata.HasOk},
				cndata.MarketIndex:  {cndata.ApiEod: cndata.HasOk},
				cndata.MarketOption: {cndata.ApiReference: cndata.HasOk, cndata.ApiEod: cndata.HasOk},
				cndata.MarketRepo:   {cndata.ApiEod: cndata.HasOk},
			},
			ReqHeaders: map[string]string{
				"Referer": "http://www.sse.com.cn/",
			},
			Options: Options,
		},
	}
	err := exg.Init()
	return exg, err
}

func NewExchange(Options map[string]interface{}) (cndata.DataSource, *errs.Error) {
	return New(Options)
}
