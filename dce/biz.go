package dce

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
)

var reContract = regexp.MustCompile(`^[a-z]+\d{4}`)

var paraSpecs = []cndata.ColSpec{
	{Field: cndata.FldUpperLimitPrice, Src: colParaUpper},
	{Field: cndata.FldLowerLimitPrice, Src: colParaLower},
}

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

// productOf a2309 -> a, a2309-C-4000 -> a
func productOf(id string) string {
	id, _, _ = strings.Cut(id, "-")
	if len(id) <= 4 {
		return id
	}
	return id[:len(id)-4]
}

func (e *DCE) fetchTable(ctx context.Context, method string, params map[string]interface{}, minHeader int) (*utils.HtmlTable, *errs.Error) {
	tables, err := cndata.HtmlTables(e.Fetch(ctx, method, params), minHeader)
	if err != nil {
		return nil, err
	}
	return tables[0], nil
}

/*
FetchReference current listed contracts. The exchange only serves the
latest contract list, so date is checked but not sent.
*/
func (e *DCE) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	kind, err := tradeType(market)
	if err != nil {
		return nil, err
	}
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	info, err := e.fetchTable(ctx, MethodContractInfo, map[string]interface{}{"contractInformation.trade_type": kind}, 1)
	if err != nil {
		return nil, err
	}
	paraTbl, err := e.fetchTable(ctx, MethodDayTradePara, map[string]interface{}{"dayTradingParameters.trade_type": kind}, 2)
	if err != nil {
		return nil, err
	}
	paras := make(map[string]map[string]string)
	for _, rec := range paraTbl.Records(paraTbl.Columns("_")) {
		paras[strings.TrimSpace(rec[colParaID])] = rec
	}
	isOption := market == cndata.MarketOption
	res, err := cndata.BuildRefTable(infoSpecs, utils.ZipRecords(infoCols, info.Rows), func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		row.ProductID = productOf(row.InstrumentID)
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
		posText := para[colParaLimit]
		if isOption {
			// e.g. "单边持仓限额 1000"
			if _, after, found := strings.Cut(posText, "限额"); found {
				posText = after
			}
		}
		var err_ error
		if row.PositionLimit, err_ = utils.ParseNullDec(posText, false); err_ != nil {
			return false, errs.NewMsg(errs.CodeInvalidResponse, "bad position limit of %s: %q", row.InstrumentID, posText)
		}
		if isOption {
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

// fillOption ids look like a2309-C-4000
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
	if row.LastDeliveryDay == "" {
		row.LastDeliveryDay = row.LastTradingDay
	}
	return nil
}

func (e *DCE) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	kind, err := tradeType(market)
	if err != nil {
		return nil, err
	}
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	month, _ := strconv.Atoi(date[4:6])
	// month of the query form is zero based
	tbl, err := e.fetchTable(ctx, MethodDayQuotes, map[string]interface{}{
		"dayQuotes.trade_type": kind,
		"year":                 date[:4],
		"month":                strconv.Itoa(month - 1),
		"day":                  date[6:],
		"currDate":             date,
	}, 1)
	if err != nil {
		return nil, err
	}
	cols, specs := futureEodCols, futureEodSpecs
	if market == cndata.MarketOption {
		cols, specs = optionEodCols, optionEodSpecs
	}
	if len(tbl.Rows) > 0 && len(tbl.Rows[0]) < len(cols) {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "dce %s quotes: %d columns, %d expected", market, len(tbl.Rows[0]), len(cols))
	}
	var recs []map[string]string
	for _, rec := range utils.ZipRecords(cols, tbl.Rows) {
		// subtotal and total rows, contracts without settlement
		if !reContract.MatchString(rec["InstrumentID"]) || utils.IsPlaceholder(rec["SettlePrice"]) {
			continue
		}
		rec[srcDay] = date
		recs = append(recs, rec)
	}
	res, err := cndata.BuildEodTable(specs, recs, func(row *cndata.EodRow, rec map[string]string) (bool, *errs.Error) {
		return cndata.MatchProduct(params, productOf(row.InstrumentID)), nil
	})
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}
