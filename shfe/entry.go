package shfe

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*SHFE, *errs.Error) {
	exg := &SHFE{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "shfe",
				Name:      "Shanghai Futures Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "https://www.shfe.com.cn",
				},
				Www: "https://www.shfe.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodFutureBase:  {Path: "data/instrument/ContractBaseInfo{date}.dat", Host: HostMain},
				MethodFutureArgs:  {Path: "data/instrument/ContractDailyTradeArgument{date}.dat", Host: HostMain},
				MethodFutureDaily: {Path: "data/dailydata/kx/kx{date}.dat", Host: HostMain},
				MethodOptionBase:  {Path: "data/instrument/option/ContractBaseInfo{date}.dat", Host: HostMain},
				MethodOptionArgs:  {Path: "data/instrument/option/ContractDailyTradeArgument{date}.dat", Host: HostMain},
				MethodOptionDaily: {Path: "data/dailydata/option/kx/kx{date}.dat", Host: HostMain},
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
