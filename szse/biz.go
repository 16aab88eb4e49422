package szse

import (
	"context"
	"math/rand"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
)

func checkDate(date string) *errs.Error {
	if !utils.IsCompactDate(date) {
		return errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	return nil
}

// fetchReport download one tab of a report workbook
func (e *SZSE) fetchReport(ctx context.Context, catalog, tab string, args map[string]interface{}) ([]map[string]string, *errs.Error) {
	if args == nil {
		args = make(map[string]interface{})
	}
	args["SHOWTYPE"] = "xlsx"
	args["CATALOGID"] = catalog
	args["TABKEY"] = tab
	args["random"] = rand.Float64()
	return cndata.XlsxRecords(e.Fetch(ctx, MethodReport, args), 0, 0)
}

func (e *SZSE) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if market != cndata.MarketOption {
		return nil, errs.UnsupportMarket
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	recs, err := e.fetchReport(ctx, catalogOption, "tab1", nil)
	if err != nil {
		return nil, err
	}
	res, err := cndata.BuildRefTable(optionRefSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		if !reCode.MatchString(row.InstrumentID) {
			return false, nil
		}
		row.Underlying = utils.RegexGroup(reUnderlying, rec["标的证券简称(代码)"], 1)
		if row.Underlying == "" {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "no underlying code for %s", row.InstrumentID)
		}
		if !cndata.MatchProduct(params, row.Underlying) {
			return false, nil
		}
		cp, ok := callPuts[strings.TrimSpace(rec["合约类型"])]
		if !ok {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad call/put %q of %s", rec["合约类型"], row.InstrumentID)
		}
		row.CallPut = cp
		row.ProductID = row.Underlying
		row.TickSize = cndata.NullDec(optionTick)
		row.ExecType = cndata.ExecEuropean
		row.DeliveryMethod = cndata.DeliverPhysical
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	e.DumpRef(market, date, res)
	return res, nil
}

/*
FetchEod one tab of the daily snapshot report.
Rows without a numeric code (blank repo lines, the "no data" notice) are dropped.
*/
func (e *SZSE) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	tab, ok := tabs[market]
	if !ok {
		return nil, errs.UnsupportMarket
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	day := utils.DashDate(date)
	recs, err := e.fetchReport(ctx, catalogSnapshot, tab.Key, map[string]interface{}{
		"txtBeginDate": day,
		"txtEndDate":   day,
		"archiveDate":  tab.ArchiveDate,
	})
	if err != nil {
		return nil, err
	}
	var keep []map[string]string
	for _, rec := range recs {
		code := strings.TrimSpace(rec[tab.Code])
		if !reCode.MatchString(code) {
			continue
		}
		if market != cndata.MarketOption {
			// numeric cells lose the leading zeros
			code = utils.ZFill(code, 6)
		}
		rec[tab.Code] = code
		keep = append(keep, rec)
	}
	res, err := cndata.BuildEodTable(tab.Specs, keep, nil)
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}
