package czce

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*CZCE, *errs.Error) {
	exg := &CZCE{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "czce",
				Name:      "Zhengzhou Commodity Exchange",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "http://www.czce.com.cn",
				},
				Www: "http://www.czce.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodFutureRef:   {Path: "cn/DFSStaticFiles/Future/{year}/{date}/FutureDataReferenceData.xml", Host: HostMain},
				MethodFutureDaily: {Path: "cn/DFSStaticFiles/Future/{year}/{date}/FutureDataDaily.htm", Host: HostMain},
				MethodOptionRef:   {Path: "cn/DFSStaticFiles/Option/{year}/{date}/OptionDataReferenceData.xml", Host: HostMain},
				MethodOptionDaily: {Path: "cn/DFSStaticFiles/Option/{year}/{date}/OptionDataDaily.htm", Host: HostMain},
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
