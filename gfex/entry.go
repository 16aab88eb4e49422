package gfex

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*GFEX, *errs.Error) {
	exg := &GFEX{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "gfex",
				Name:      "Guangzhou Futures Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "http://www.gfex.com.cn",
				},
				Www: "http://www.gfex.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodContractInfo: {Path: "u/interfacesWebTtQueryContractInfo/loadList", Host: HostMain,
					Method: cndata.MethodPost, Body: cndata.BodyForm},
				MethodTradePara: {Path: "u/interfacesWebTtQueryTradPara/loadDayList", Host: HostMain,
					Method: cndata.MethodPost, Body: cndata.BodyForm},
				MethodDayQuotes: {Path: "u/interfacesWebTiDayQuotes/loadList", Host: HostMain,
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
