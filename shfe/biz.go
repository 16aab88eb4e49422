package shfe

import (
	"context"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

func (e *SHFE) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
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

func (e *SHFE) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	var res cndata.EodTable
	var err *errs.Error
	switch market {
	case cndata.MarketFutures, cndata.MarketOption:
		res, err = e.fetchEod(ctx, market, date, params)
	default:
		return nil, errs.UnsupportMarket
	}
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}

func (e *SHFE) fetchList(ctx context.Context, method, key, date string) ([]map[string]string, *errs.Error) {
	var data map[string]interface{}
	rsp := e.Fetch(ctx, method, map[string]interface{}{"date": date})
	if err := cndata.DecodeJson(rsp, &data); err != nil {
		return nil, err
	}
	return cndata.ListRecords(data, key)
}

// fetchArgs limit values of every contract, keyed by trimmed instrument id
func (e *SHFE) fetchArgs(ctx context.Context, method, key, date, upperCol, lowerCol string) (map[string]*limitArgs, *errs.Error) {
	recs, err := e.fetchList(ctx, method, key, date)
	if err != nil {
		return nil, err
	}
	res := make(map[string]*limitArgs, len(recs))
	for _, rec := range recs {
		id := strings.TrimSpace(rec["INSTRUMENTID"])
		res[id] = &limitArgs{Upper: rec[upperCol], Lower: rec[lowerCol]}
	}
	return res, nil
}

// productOf futures ids are product code plus YYMM
func productOf(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[:len(id)-4]
}

/*
fetchFutureRef join contract base info with daily trade arguments.
Limit prices are derived from the previous session's settlement price,
falling back to the list price for contracts without one.
*/
func (e *SHFE) fetchFutureRef(ctx context.Context, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	if e.Calendar == nil {
		return nil, errs.NewMsg(errs.CodeParamRequired, "shfe futures reference requires a trading calendar")
	}
	preDay, err := e.Calendar.Pre(date)
	if err != nil {
		return nil, err
	}
	recs, err := e.fetchList(ctx, MethodFutureBase, keyFutureBase, date)
	if err != nil {
		return nil, err
	}
	args, err := e.fetchArgs(ctx, MethodFutureArgs, keyFutureArgs, date, "UPPER_VALUE", "LOWER_VALUE")
	if err != nil {
		return nil, err
	}
	preEod, err := e.fetchEod(ctx, cndata.MarketFutures, preDay, nil)
	if err != nil {
		return nil, err
	}
	preMap := preEod.Index()
	return cndata.BuildRefTable(futureRefSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		row.ProductID = productOf(row.InstrumentID)
		if !cndata.MatchProduct(params, row.ProductID) {
			return false, nil
		}
		arg, ok := args[row.InstrumentID]
		if !ok {
			return false, nil
		}
		prod := e.Products.Get(e.ID, cndata.MarketFutures, row.ProductID)
		if prod == nil {
			log.Ctx(ctx).Warn("product not configured", zap.String("product", row.ProductID))
		}
		row.Unit = prod.Unit()
		row.TickSize = prod.Tick()
		preSettle := row.ListPrice
		if pre, ok := preMap[row.InstrumentID]; ok && pre.SettlePrice.Valid {
			preSettle = pre.SettlePrice
		}
		if !preSettle.Valid || !row.TickSize.Valid {
			return true, nil
		}
		upper, err_ := utils.ParseDec(arg.Upper)
		lower, err2 := utils.ParseDec(arg.Lower)
		if err_ != nil || err2 != nil {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad limit ratio of %s: %s/%s", row.InstrumentID, arg.Upper, arg.Lower)
		}
		tick := row.TickSize.Decimal
		row.UpperLimitPrice = cndata.NullDec(utils.PriceLimit(preSettle.Decimal, upper, tick, true))
		row.LowerLimitPrice = cndata.NullDec(utils.PriceLimit(preSettle.Decimal, lower, tick, false))
		return true, nil
	})
}

/*
fetchOptionRef option ids look like cu2309C68000; the flag letter splits
underlying and strike.
*/
func (e *SHFE) fetchOptionRef(ctx context.Context, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	recs, err := e.fetchList(ctx, MethodOptionBase, keyOptionBase, date)
	if err != nil {
		return nil, err
	}
	args, err := e.fetchArgs(ctx, MethodOptionArgs, keyOptionArgs, date, "UPPERVALUE", "LOWERVALUE")
	if err != nil {
		return nil, err
	}
	return cndata.BuildRefTable(optionRefSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		if !cndata.MatchProduct(params, row.ProductID) {
			return false, nil
		}
		arg, ok := args[row.InstrumentID]
		if !ok {
			return false, nil
		}
		var err_ error
		if row.UpperLimitPrice, err_ = utils.ParseNullDec(arg.Upper, false); err_ != nil {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad upper limit of %s: %s", row.InstrumentID, arg.Upper)
		}
		if row.LowerLimitPrice, err_ = utils.ParseNullDec(arg.Lower, false); err_ != nil {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad lower limit of %s: %s", row.InstrumentID, arg.Lower)
		}
		flag := cndata.PutOpt
		if strings.Contains(row.InstrumentID, cndata.CallOpt) {
			flag = cndata.CallOpt
		}
		parts := strings.SplitN(row.InstrumentID, flag, 2)
		if len(parts) != 2 {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad option id: %s", row.InstrumentID)
		}
		row.CallPut = flag
		row.Underlying = parts[0]
		if row.StrikePrice, err_ = utils.ParseNullDec(parts[1], false); err_ != nil {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad strike in %s", row.InstrumentID)
		}
		row.ExecType = cndata.ExecAmerican
		row.DeliveryMethod = cndata.DeliverPhysical
		return true, nil
	})
}

/*
fetchEod kx files of futures and options. Rows without a settlement price
(subtotals, untraded months) are dropped.
*/
func (e *SHFE) fetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	method, specs := MethodFutureDaily, futureEodSpecs
	if market == cndata.MarketOption {
		method, specs = MethodOptionDaily, optionEodSpecs
	}
	recs, err := e.fetchList(ctx, method, keyDaily, date)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if market == cndata.MarketOption {
			rec[srcID] = strings.TrimSpace(rec["INSTRUMENTID"])
		} else {
			rec[srcID] = strings.TrimSpace(rec["PRODUCTGROUPID"]) + strings.TrimSpace(rec["DELIVERYMONTH"])
		}
		rec[srcDay] = date
	}
	return cndata.BuildEodTable(specs, recs, func(row *cndata.EodRow, rec map[string]string) (bool, *errs.Error) {
		if !cndata.HasSettle(row) {
			return false, nil
		}
		return cndata.MatchProduct(params, strings.TrimSpace(rec["PRODUCTGROUPID"])), nil
	})
}
