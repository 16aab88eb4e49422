package hkex

import (
	"context"
	"sort"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

func checkDate(date string) *errs.Error {
	if !utils.IsCompactDate(date) {
		return errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	return nil
}

// FetchReference the list of securities. only the current list is published.
func (e *HKEX) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if market != cndata.MarketStock {
		return nil, errs.UnsupportMarket
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	recs, err := cndata.XlsxRecords(e.Fetch(ctx, MethodSecurities, nil), 0, 2)
	if err != nil {
		return nil, err
	}
	res, err := cndata.BuildRefTable(securitySpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		if !reQuoteLine.MatchString(row.InstrumentID) {
			return false, nil
		}
		row.InstrumentID = utils.ZFill(row.InstrumentID, 5)
		return cndata.MatchProduct(params, row.ProductID), nil
	})
	if err != nil {
		return nil, err
	}
	e.DumpRef(market, date, res)
	return res, nil
}

func (e *HKEX) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if err := checkDate(date); err != nil {
		return nil, err
	}
	var res cndata.EodTable
	var err *errs.Error
	switch market {
	case cndata.MarketStock:
		res, err = e.fetchStockEod(ctx, date)
	case cndata.MarketFutures:
		res, err = e.fetchFutureEod(ctx, date, params)
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

func (e *HKEX) fetchStockEod(ctx context.Context, date string) (cndata.EodTable, *errs.Error) {
	rsp := e.Fetch(ctx, MethodStockQuote, map[string]interface{}{"day": utils.ShortDate(date)})
	if rsp.Error != nil {
		return nil, rsp.Error
	}
	text, err_ := utils.DecodeGBK([]byte(rsp.Content))
	if err_ != nil {
		return nil, errs.NewMsg(errs.CodeUnmarshalFail, "%s: %v", rsp.Url, err_)
	}
	recs, err := parseQuotes(text, date)
	if err != nil {
		return nil, err
	}
	return cndata.BuildEodTable(quoteSpecs, recs, nil)
}

/*
futureReports products of the margin list plus the block reports.
Each listed code X is published as report Xf.
*/
func (e *HKEX) futureReports(ctx context.Context, date string) ([]*dayReport, *errs.Error) {
	tables, err := cndata.HtmlTables(e.Fetch(ctx, MethodMarginList, map[string]interface{}{"day": utils.ShortDate(date)}), 0)
	if err != nil {
		return nil, err
	}
	last := tables[len(tables)-1]
	seen := make(map[string]bool)
	var res []*dayReport
	cells := append(append([][]string{}, last.Header...), last.Rows...)
	for _, row := range cells {
		for _, cell := range row {
			if !reProductCode.MatchString(cell) || seen[cell] {
				continue
			}
			seen[cell] = true
			name, ok := futureNames[cell]
			if !ok {
				name = cell + "f"
			}
			layout := layoutSession
			if rangeFutures[cell] {
				layout = layoutRange
			}
			res = append(res, &dayReport{Product: cell, Name: name, Layout: layout})
		}
	}
	if !seen["MBI"] {
		res = append(res, &dayReport{Product: "MBI", Name: futureNames["MBI"], Layout: layoutRange})
	}
	return append(res, blockReports...), nil
}

/*
fetchReports download day reports of every product, each with up to RetryDay attempts.
A product without report on the day (404) contributes nothing.
*/
func (e *HKEX) fetchReports(ctx context.Context, date string, reports []*dayReport,
	parse func(text, date string, rpt *dayReport) ([]map[string]string, *errs.Error)) (cndata.EodTable, *errs.Error) {
	byName := make(map[string]*dayReport, len(reports))
	names := make([]string, 0, len(reports))
	for _, rpt := range reports {
		byName[rpt.Name] = rpt
		names = append(names, rpt.Name)
	}
	day := utils.ShortDate(date)
	rows := cndata.FetchBatch(ctx, names, e.GetRetry(cndata.RetryDay), e.Config.Concurrency,
		func(ctx context.Context, name string) ([]*cndata.EodRow, *errs.Error) {
			rsp := e.Fetch(ctx, MethodDayReport, map[string]interface{}{"report": name, "day": day})
			if rsp.Error != nil {
				if rsp.Status == 404 {
					log.Ctx(ctx).Debug("no day report", zap.String("report", name))
					return nil, nil
				}
				return nil, rsp.Error
			}
			recs, err := parse(rsp.Content, date, byName[name])
			if err != nil {
				return nil, err
			}
			return cndata.BuildEodTable(reportSpecs, recs, nil)
		})
	return rows, nil
}

func (e *HKEX) fetchFutureEod(ctx context.Context, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	reports, err := e.futureReports(ctx, date)
	if err != nil {
		return nil, err
	}
	reports = filterReports(reports, params)
	return e.fetchReports(ctx, date, reports, parseFutureReport)
}

func (e *HKEX) fetchOptionEod(ctx context.Context, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	res, err := e.fetchReports(ctx, date, filterReports(optionReports, params), parseOptionReport)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].InstrumentID < res[j].InstrumentID
	})
	return res, nil
}

func filterReports(reports []*dayReport, params map[string]interface{}) []*dayReport {
	var res []*dayReport
	for _, rpt := range reports {
		if cndata.MatchProduct(params, rpt.Product) {
			res = append(res, rpt)
		}
	}
	return res
}
