package cffex

import (
	"context"
	"regexp"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

var reDate = regexp.MustCompile(`\d{8}`)

func dayParams(date string) (map[string]interface{}, *errs.Error) {
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	month, day := utils.SplitDate(date)
	return map[string]interface{}{
		"month": month,
		"day":   day,
		"id":    utils.RandInt(10, 60),
	}, nil
}

func (e *CFFEX) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	var res cndata.ReferenceTable
	var err *errs.Error
	switch market {
	case cndata.MarketFutures:
		res, err = e.fetchFutureRef(ctx, date, params)
	case cndata.MarketOption:
		res, err = e.fetchOptionRef(ctx, date, params)
	default:
		return nil, errs.UnsupportMarket
	}
	if err != nil {
		return nil, err
	}
	e.DumpRef(market, date, res)
	return res, nil
}

func (e *CFFEX) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if market != cndata.MarketFutures && market != cndata.MarketOption {
		return nil, errs.UnsupportMarket
	}
	args, err := dayParams(date)
	if err != nil {
		return nil, err
	}
	recs, err := cndata.XmlRecords(e.Fetch(ctx, MethodDailyQuotes, args))
	if err != nil {
		return nil, err
	}
	isOption := market == cndata.MarketOption
	var keep []map[string]string
	for _, rec := range recs {
		if strings.Contains(rec["instrumentid"], "-") != isOption {
			continue
		}
		if !cndata.MatchProduct(params, rec["productid"]) {
			continue
		}
		keep = append(keep, rec)
	}
	res, err := cndata.BuildEodTable(eodSpecs, keep, nil)
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}

func (e *CFFEX) fetchRefRecords(ctx context.Context, date string, params map[string]interface{}, isOption bool) ([]map[string]string, *errs.Error) {
	args, err := dayParams(date)
	if err != nil {
		return nil, err
	}
	recs, err := cndata.XmlRecords(e.Fetch(ctx, MethodTradeParams, args))
	if err != nil {
		return nil, err
	}
	var res []map[string]string
	for _, rec := range recs {
		if strings.Contains(rec["INSTRUMENT_ID"], "-") != isOption {
			continue
		}
		if cndata.MatchProduct(params, rec["PRODUCT_ID"]) {
			res = append(res, rec)
		}
	}
	return res, nil
}

func (e *CFFEX) fillProduct(row *cndata.ReferenceRow, market string) {
	prod := e.Products.Get(e.ID, market, row.ProductID)
	if prod == nil {
		log.Warn("product not configured", zap.String("exg", e.ID), zap.String("product", row.ProductID))
	}
	row.Unit = prod.Unit()
	row.TickSize = prod.Tick()
}

/*
fetchFutureRef contracts without "-" in the id.
mode ongoing also merges delivery dates from the contract tip list.
*/
func (e *CFFEX) fetchFutureRef(ctx context.Context, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	recs, err := e.fetchRefRecords(ctx, date, params, false)
	if err != nil {
		return nil, err
	}
	res, err := cndata.BuildRefTable(refSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		e.fillProduct(row, cndata.MarketFutures)
		return true, nil
	})
	if err != nil || cndata.GetMode(params) != cndata.ModeOngoing {
		return res, err
	}
	tips, err := e.fetchTips(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range res {
		if tip, ok := tips[row.InstrumentID]; ok {
			row.FirstDeliveryDay = tip.FirstDeliveryDay
			row.LastDeliveryDay = tip.LastDeliveryDay
		}
	}
	return res, nil
}

// fetchTips delivery windows of listed futures, by instrument
func (e *CFFEX) fetchTips(ctx context.Context) (map[string]*cndata.ReferenceRow, *errs.Error) {
	recs, err := cndata.XmlRecords(e.Fetch(ctx, MethodTip, map[string]interface{}{"id": utils.RandInt(10, 60)}))
	if err != nil {
		return nil, err
	}
	res := make(map[string]*cndata.ReferenceRow)
	for _, rec := range recs {
		if strings.Contains(rec["INSTRUMENTID"], "-") {
			continue
		}
		row, err := cndata.ParseRef(tipSpecs, rec)
		if err != nil {
			return nil, err
		}
		res[row.InstrumentID] = row
	}
	return res, nil
}

/*
fetchOptionRef ids look like IO2308-C-3900: underlying, call/put, strike
*/
func (e *CFFEX) fetchOptionRef(ctx context.Context, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	recs, err := e.fetchRefRecords(ctx, date, params, true)
	if err != nil {
		return nil, err
	}
	return cndata.BuildRefTable(refSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		parts := strings.Split(row.InstrumentID, "-")
		if len(parts) != 3 {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad option id: %s", row.InstrumentID)
		}
		row.Underlying = parts[0]
		row.CallPut = parts[1]
		strike, err_ := utils.ParseNullDec(parts[2], false)
		if err_ != nil {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad strike in %s", row.InstrumentID)
		}
		row.StrikePrice = strike
		row.ExecType = cndata.ExecEuropean
		row.DeliveryMethod = cndata.DeliverCash
		e.fillProduct(row, cndata.MarketOption)
		return true, nil
	})
}

/*
FetchMarginParams latest published margin parameters of index options.
The index page names the newest publication day.
*/
func (e *CFFEX) FetchMarginParams(ctx context.Context) ([]*MarginParam, *errs.Error) {
	rsp := e.Fetch(ctx, MethodMarginIndex, map[string]interface{}{"id": utils.RandInt(10, 60)})
	if rsp.Error != nil {
		return nil, rsp.Error
	}
	date := reDate.FindString(rsp.Content)
	if date == "" {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "no date in %s", rsp.Url)
	}
	args, err := dayParams(date)
	if err != nil {
		return nil, err
	}
	recs, err := cndata.XmlRecords(e.Fetch(ctx, MethodMarginParams, args))
	if err != nil {
		return nil, err
	}
	res := make([]*MarginParam, 0, len(recs))
	for _, rec := range recs {
		adjust, err1 := utils.ParseDec(rec["MARGIN_ADJUSTMENT_FACTOR"])
		guard, err2 := utils.ParseDec(rec["MARGINRISKMANAGEPARAM"])
		if err1 != nil || err2 != nil {
			return nil, errs.NewMsg(errs.CodeInvalidResponse, "bad margin params of %s", rec["OPTION_SERIES_ID"])
		}
		res = append(res, &MarginParam{
			Underlying:      strings.TrimSpace(rec["OPTION_SERIES_ID"]),
			AdjustFactor:    adjust,
			GuaranteeFactor: guard,
		})
	}
	return res, nil
}
