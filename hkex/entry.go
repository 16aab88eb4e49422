package hkex

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

func New(Options map[string]interface{}) (*HKEX, *errs.Error) {
	exg := &HKEX{
		Exchange: &cndata.Exchange{
			ExgInfo: &cndata.ExgInfo{
				ID:        "hkex",
				Name:      "Hong Kong Exchanges and Clearing",
				Countries: []string{"HK"},
			},
			Hosts: &cndata.ExgHosts{
				Prod: map[string]string{
					HostMain: "https://sc.hkex.com.hk",
				},
				Www: "https://www.hkex.com.hk",
			},
			Apis: map[string]*cndata.Entry{
				MethodSecurities: {Path: "TuniS/www.hkex.com.hk/chi/services/trading/securities/securitieslists/ListOfSecurities_c.xlsx", Host: HostMain},
				MethodStockQuote: {Path: "gb/www.hkex.com.hk/chi/stat/smstat/dayquot/d{day}c.htm", Host: HostMain},
				MethodMarginList: {Path: "gb/www.hkex.com.hk/chi/market/rm/rm_dcrm/riskdata/margin_hkcc/mertc_hkcc_{day}.htm", Host: HostMain},
				MethodDayReport:  {Path: "TuniS/www.hkex.com.hk/eng/stat/dmstat/dayrpt/{report}{day}.htm", Host: HostMain},
			},
			Has: map[string]map[string]int{
				cndata.MarketStock:   {cndata.ApiReference: cndata.HasOk, cndata.ApiEod: cndata.HasOk},
				cndata.MarketFutures: {cndata.ApiEod: cndata.HasOk},
				cndata.MarketOption:  {cndata.ApiEod: cndata.HasOk},
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
