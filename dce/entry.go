package dce

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*DCE, *errs.Error) {
	exg := &DCE{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "dce",
				Name:      "Dalian Commodity Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "http://www.dce.com.cn",
				},
				Www: "http://www.dce.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodContractInfo: {Path: "publicweb/businessguidelines/queryContractInfo.html", Host: HostMain,
					Method: cndata.MethodPost, Body: cndata.BodyForm},
				MethodDayTradePara: {Path: "publicweb/notificationtips/queryDayTradPara.html", Host: HostMain,
					Method: cndata.MethodPost, Body: cndata.BodyForm},
				MethodDayQuotes: {Path: "publicweb/quotesdata/dayQuotesCh.html", Host: HostMain,
					Method: cndata.MethodPost, Body: cndata.BodyForm},
			},
			Has: map[string]map[string]int{
				cndata.MarketFutures: {cndata.ApiReference: cndata.HasOk, cndata.ApiEod: cndata.HasOk},
				cndata.MarketOption:  {cndata.ApiReference: cndata.HasOk, cndata.ApiEod: cndata.HasOk},
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
