package cffex

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*CFFEX, *errs.Error) {
	exg := &CFFEX{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "cffex",
				Name:      "China Financial Futures Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "http://www.cffex.com.cn",
				},
				Www: "http://www.cffex.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodTip:          {Path: "cp/index_6719.xml", Host: HostMain},
				MethodTradeParams:  {Path: "sj/jycs/{month}/{day}/index.xml", Host: HostMain},
				MethodDailyQuotes:  {Path: "sj/hqsj/rtj/{month}/{day}/index.xml", Host: HostMain},
				MethodMarginIndex:  {Path: "sj/jscs/option/index_6792.xml", Host: HostMain},
				MethodMarginParams: {Path: "sj/jscs/option/{month}/{day}/index.xml", Host: HostMain},
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
