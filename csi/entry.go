package csi

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*CSI, *errs.Error) {
	exg := &CSI{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "csi",
				Name:      "China Securities Index",
				Countries: []string{"CN"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostHome: "https://www.csindex.com.cn",
				},
				Www: "https://www.csindex.com.cn",
			},
			Apis: map[string]*cndata.Entry{
				MethodIndexList: {Path: "csindex-home/index-list/query-index-item", Host: HostHome,
					Method: cndata.MethodPost, Body: cndata.BodyJson},
			},
			Has: map[string]map[string]int{
				cndata.MarketIndex: {cndata.ApiReference: cndata.HasOk},
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
