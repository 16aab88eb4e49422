package gfex

import (
	"context"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
)

func tradeType(market string) (string, *errs.Error) {
	switch market {
	case cndata.MarketFutures:
		return tradeFutures, nil
	case cndata.MarketOption:
		return tradeOption, nil
	default:
		return "", errs.UnsupportMarket
	}
}

func (e *GFEX) fetchData(ctx context.Context, method string, params map[string]interface{}) ([]map[string]string, *errs.Error) {
	var data map[string]interface{}
	if err := cndata.DecodeJson(e.Fetch(ctx, method, params), &data); err != nil {
		return nil, err
	}
	return cndata.ListRecords(data, "data")
}

/*
FetchReference latest contract list joined with daily trade parameters.
Only the current list is served; date is checked but not sent.
*/
func (e *GFEX) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	kind, err := tradeType(market)
	if err != nil {
		return nil, err
	}
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	args := map[string]interface{}{"trade_type": kind}
	infos, err := e.fetchData(ctx, MethodContractInfo, args)
	if err != nil {
		return nil, err
	}
	paraRecs, err := e.fetchData(ctx, MethodTradePara, args)
	if err != nil {
		return nil, err
	}
	paras := make(map[string]map[string]string, len(paraRecs))
	for _, rec := range paraRecs {
		// the endpoint may return both trade types
		if rec["tradeType"] != kind {
			continue
		}
		paras[strings.TrimSpace(rec["contractId"])] = rec
	}
	res, err := cndata.BuildRefTable(infoSpecs, infos, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		if !cndata.MatchProduct(params, row.ProductID) {
			return false, nil
		}
		para, ok := paras[row.InstrumentID]
		if !ok {
			return false, nil
		}
		limits, err := cndata.ParseRef(paraSpecs, para)
		if err != nil {
			return false, err
		}
		row.UpperLimitPrice = limits.UpperLimitPrice
		row.LowerLimitPrice = limits.LowerLimitPrice
		row.PositionLimit = limits.PositionLimit
		if kind == tradeOption {
			return true, fillOption(row)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	e.DumpRef(market, date, res)
	return res, nil
}

// fillOption ids look like si2309-C-15000
func fillOption(row *cndata.ReferenceRow) *errs.Error {
	parts := strings.Split(row.InstrumentID, "-")
	if len(parts) != 3 {
		return errs.NewMsg(errs.CodeInvalidResponse, "bad option id: %s", row.InstrumentID)
	}
	strike, err := utils.ParseNullDec(parts[2], false)
	if err != nil {
		return errs.NewMsg(errs.CodeInvalidResponse, "bad strike in %s", row.InstrumentID)
	}
	row.Underlying = parts[0]
	row.CallPut = parts[1]
	row.StrikePrice = strike
	row.ExecType = cndata.ExecAmerican
	row.DeliveryMethod = cndata.DeliverPhysical
	return nil
}

func (e *GFEX) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	kind, err := tradeType(market)
	if err != nil {
		return nil, err
	}
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	recs, err := e.fetchData(ctx, MethodDayQuotes, map[string]interface{}{"trade_date": date, "trade_type": kind})
	if err != nil {
		return nil, err
	}
	var keep []map[string]string
	for _, rec := range recs {
		// subtotal rows and untraded contracts have no settlement
		if utils.IsPlaceholder(rec["clearPrice"]) {
			continue
		}
		variety := strings.TrimSpace(rec["varietyOrder"])
		if !cndata.MatchProduct(params, variety) {
			continue
		}
		if kind == tradeOption {
			rec[srcID] = strings.TrimSpace(rec["delivMonth"])
		} else {
			rec[srcID] = variety + strings.TrimSpace(rec["delivMonth"])
		}
		rec[srcDay] = date
		keep = append(keep, rec)
	}
	res, err := cndata.BuildEodTable(eodSpecs, keep, nil)
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}
