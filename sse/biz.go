package sse

import (
	"context"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

func (e *SSE) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if err := checkDate(date, false); err != nil {
		return nil, err
	}
	var res cndata.ReferenceTable
	var err *errs.Error
	switch market {
	case cndata.MarketStock:
		res, err = e.fetchStockRef(ctx, cndata.GetMode(params) == cndata.ModeHistory)
	case cndata.MarketOption:
		res, err = e.fetchOptionRef(ctx, params)
	default:
		return nil, errs.UnsupportMarket
	}
	if err != nil {
		return nil, err
	}
	e.DumpRef(market, date, res)
	return res, nil
}

/*
FetchEod
stock, bond and fund read the exchange snapshot, which only holds the latest session.
With ParamHistory they are rebuilt from per-instrument day bars instead.
Repo has no snapshot and always goes through day bars.
*/
func (e *SSE) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	var res cndata.EodTable
	var err *errs.Error
	switch market {
	case cndata.MarketStock, cndata.MarketBond, cndata.MarketFund:
		if isHistory(params) {
			res, err = e.fetchHistory(ctx, market, date)
		} else {
			res, err = e.fetchSnapshot(ctx, market, date)
		}
	case cndata.MarketIndex:
		if isHistory(params) {
			return nil, errs.NewMsg(errs.CodeParamInvalid, "index has no day bar history")
		}
		res, err = e.fetchSnapshot(ctx, market, date)
	case cndata.MarketRepo:
		res, err = e.fetchHistory(ctx, market, date)
	case cndata.MarketOption:
		res, err = e.fetchOptionEod(ctx, date, params)
	default:
		return nil, errs.UnsupportMarket
	}
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}

func (e *SSE) fetchSnapshot(ctx context.Context, market, date string) (cndata.EodTable, *errs.Error) {
	if err := checkDate(date, false); err != nil {
		return nil, err
	}
	snap := snapshots[market]
	data, err := e.getYunhq(ctx, MethodSnapshot, map[string]interface{}{
		"board":  snap.Board,
		"kind":   snap.Kind,
		"select": "code," + strings.Join(snap.Select, ",") + ",",
		"order":  "",
		"begin":  0,
		"end":    -1,
	})
	if err != nil {
		return nil, err
	}
	day := payloadDay(data)
	if day != date {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "snapshot is of %s, not %s; pass %s for past days",
			day, date, cndata.ParamHistory)
	}
	cols := append([]string{srcID}, snap.Select...)
	recs, err := cndata.RowRecords(data, "list", cols)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		rec[srcDay] = day
	}
	return cndata.BuildEodTable(tradeSpecs, recs, nil)
}

/*
fetchHistory
day bars of every listed instrument, kept for the requested day or all days with DateAll.
An instrument failing every attempt is skipped.
*/
func (e *SSE) fetchHistory(ctx context.Context, market, date string) (cndata.EodTable, *errs.Error) {
	if err := checkDate(date, true); err != nil {
		return nil, err
	}
	ids, err := e.listIDs(ctx, market)
	if err != nil {
		return nil, err
	}
	board := dayBoards[market]
	rows := cndata.FetchBatch(ctx, ids, e.GetRetry(cndata.RetryBatch), e.Config.Concurrency,
		func(ctx context.Context, code string) ([]*cndata.EodRow, *errs.Error) {
			data, err := e.getYunhq(ctx, MethodDayK, map[string]interface{}{
				"board":  board,
				"code":   code,
				"begin":  0,
				"end":    -1,
				"period": "day",
			})
			if err != nil {
				return nil, err
			}
			recs, err := cndata.RowRecords(data, "kline", klineCols)
			if err != nil {
				return nil, err
			}
			var keep []map[string]string
			for _, rec := range recs {
				if date != cndata.DateAll && rec[srcDay] != date {
					continue
				}
				rec[srcID] = code
				keep = append(keep, rec)
			}
			return cndata.BuildEodTable(tradeSpecs, keep, nil)
		})
	log.Ctx(ctx).Info("day bars loaded", zap.Int("instruments", len(ids)), zap.Int("rows", len(rows)))
	return rows, nil
}

// listIDs instruments with day bars of market
func (e *SSE) listIDs(ctx context.Context, market string) ([]string, *errs.Error) {
	switch market {
	case cndata.MarketStock:
		ref, err := e.fetchStockRef(ctx, true)
		if err != nil {
			return nil, err
		}
		return ref.IDs(), nil
	case cndata.MarketBond:
		recs, err := e.getQuery(ctx, MethodBondList, map[string]interface{}{
			"sqlId":     "CP_ZQ_ZQLB",
			"BOND_TYPE": "全部",
		})
		if err != nil {
			return nil, err
		}
		return pluck(recs, "BOND_CODE"), nil
	case cndata.MarketFund:
		recs, err := e.getQuery(ctx, MethodFundList, map[string]interface{}{
			"sqlId":    "FUND_LIST",
			"fundType": "00,10,20,30,40,50,",
			"order":    "",
		})
		if err != nil {
			return nil, err
		}
		return pluck(recs, "fundCode"), nil
	case cndata.MarketRepo:
		recs, err := e.getQuery(ctx, MethodCommonQuery, map[string]interface{}{
			"sqlId":             sqlRepoList,
			"isPagination":      "true",
			"pageHelp.pageSize": 1000,
			"pageHelp.pageNo":   1,
		})
		if err != nil {
			return nil, err
		}
		return pluck(recs, "BOND_ID"), nil
	}
	return nil, errs.UnsupportMarket
}

/*
fetchStockRef listed A shares of the main board and STAR market.
withDelisted appends companies that terminated listing.
*/
func (e *SSE) fetchStockRef(ctx context.Context, withDelisted bool) (cndata.ReferenceTable, *errs.Error) {
	var res cndata.ReferenceTable
	for _, stockType := range stockTypes {
		part, err := e.fetchStockList(ctx, sqlStockList, stockType, "2,4,5,7,8", stockSpecs)
		if err != nil {
			return nil, err
		}
		res = append(res, part...)
	}
	if !withDelisted {
		return res, nil
	}
	for _, stockType := range stockTypes {
		part, err := e.fetchStockList(ctx, sqlDelistList, stockType, "3", delistSpecs)
		if err != nil {
			return nil, err
		}
		res = append(res, part...)
	}
	return res, nil
}

func (e *SSE) fetchStockList(ctx context.Context, sqlId, stockType, status string, specs []cndata.ColSpec) (cndata.ReferenceTable, *errs.Error) {
	recs, err := cndata.XlsxRecords(e.Fetch(ctx, MethodStockList, map[string]interface{}{
		"sqlId":          sqlId,
		"type":           "inParams",
		"CSRC_CODE":      "",
		"STOCK_CODE":     "",
		"REG_PROVINCE":   "",
		"STOCK_TYPE":     stockType,
		"COMPANY_STATUS": status,
	}), 0, 0)
	if err != nil {
		return nil, err
	}
	return cndata.BuildRefTable(specs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		row.InstrumentID = utils.ZFill(row.InstrumentID, 6)
		return row.InstrumentID != "000000", nil
	})
}

// fetchOptionRef contracts listed on the current day
func (e *SSE) fetchOptionRef(ctx context.Context, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	recs, err := e.getQuery(ctx, MethodCommonQuery, map[string]interface{}{"sqlId": sqlOptionToday})
	if err != nil {
		return nil, err
	}
	return cndata.BuildRefTable(optionRefSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		if !cndata.MatchProduct(params, row.Underlying) {
			return false, nil
		}
		cp, ok := callPuts[strings.TrimSpace(rec["CALL_OR_PUT"])]
		if !ok {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad call/put %q of %s", rec["CALL_OR_PUT"], row.InstrumentID)
		}
		row.CallPut = cp
		row.ProductID = row.Underlying
		row.TickSize = cndata.NullDec(optionTick)
		row.ExecType = cndata.ExecEuropean
		row.DeliveryMethod = cndata.DeliverPhysical
		return true, nil
	})
}

/*
fetchOptionEod settlement of every series, one request per underlying and expiry month.
*/
func (e *SSE) fetchOptionEod(ctx context.Context, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	if err := checkDate(date, false); err != nil {
		return nil, err
	}
	data, err := e.getYunhq(ctx, MethodExpireMonth, map[string]interface{}{"select": "stockid,expiremonth"})
	if err != nil {
		return nil, err
	}
	recs, err := cndata.RowRecords(data, "list", []string{"stockid", "expiremonth"})
	if err != nil {
		return nil, err
	}
	var series []string
	for _, rec := range recs {
		if !cndata.MatchProduct(params, rec["stockid"]) {
			continue
		}
		month := rec["expiremonth"]
		if len(month) < 2 {
			return nil, errs.NewMsg(errs.CodeInvalidResponse, "bad expire month %q", month)
		}
		series = append(series, rec["stockid"]+"_"+month[len(month)-2:])
	}
	rows := cndata.FetchBatch(ctx, series, e.GetRetry(cndata.RetryBatch), e.Config.Concurrency,
		func(ctx context.Context, key string) ([]*cndata.EodRow, *errs.Error) {
			data, err := e.getYunhq(ctx, MethodTStyle, map[string]interface{}{
				"series": key,
				"select": "contractid,last,presetpx,",
				"order":  "contractid,",
			})
			if err != nil {
				return nil, err
			}
			recs, err := cndata.RowRecords(data, "list", tstyleCols)
			if err != nil {
				return nil, err
			}
			day := payloadDay(data)
			for _, rec := range recs {
				rec[srcDay] = day
			}
			return cndata.BuildEodTable(optionEodSpecs, recs, nil)
		})
	for _, row := range rows {
		if row.TradingDay != date {
			return nil, errs.NewMsg(errs.CodeParamInvalid, "option quotes are of %s, not %s", row.TradingDay, date)
		}
	}
	return rows, nil
}
