package szse

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*SZSE, *errs.Error) {
	exg := &SZSE{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "szse",
				Name:      "Shenzhen Stock Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "https://www.szse.cn",
				},
				Www: "https://www.szse.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodReport: {Path: "api/report/ShowReport", Host: HostMain},
			},
			Has: map[string]map[string]int{
				cndata.MarketStock:  {cndata.ApiEod: cndata.HasOk},
				cndata.MarketFund:   {cndata.ApiEod: cndata.HasOk},
				cndata.MarketBond:   {cndata.ApiEod: cndata.HasOk},
				cndata.MarketRepo:   {cndata.ApiEod: cndata.HasOk},
				cndata.MarketIndex:  {cndata.ApiEod: cndata.HasOk},
				cndata.MarketOption: {cndata.ApiReference: cndata.HasOk, cndata.ApiEod: cndata.HasOk},
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
