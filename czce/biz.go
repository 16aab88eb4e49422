package czce

import (
	"context"
	"regexp"
	"strings"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"github.com/shopspring/decimal"
)

func dayArgs(date string) (map[string]interface{}, *errs.Error) {
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	return map[string]interface{}{"year": date[:4], "date": date}, nil
}

// leadNum first number of a text cell, invalid when absent
func leadNum(re *regexp.Regexp, text string) decimal.NullDecimal {
	num, err := utils.ParseNullDec(utils.RegexGroup(re, text, 1), false)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return num
}

func (e *CZCE) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	args, err := dayArgs(date)
	if err != nil {
		return nil, err
	}
	var res cndata.ReferenceTable
	switch market {
	case cndata.MarketFutures:
		recs, err := cndata.XmlRecords(e.Fetch(ctx, MethodFutureRef, args))
		if err != nil {
			return nil, err
		}
		res, err = cndata.BuildRefTable(futureRefSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
			if !cndata.MatchProduct(params, row.ProductID) {
				return false, nil
			}
			fillCommon(row, rec)
			// ±5%
			ratio := strings.Trim(strings.TrimSpace(rec[colPxLimit]), "±%")
			if pct, err_ := utils.ParseNullDec(ratio, false); err_ == nil && pct.Valid {
				row.LimitRatio = cndata.NullDec(utils.RoundHalfUpDec(pct.Decimal.Div(decimal.NewFromInt(100)), 2))
			}
			return true, nil
		})
		if err != nil {
			return nil, err
		}
	case cndata.MarketOption:
		recs, err := cndata.XmlRecords(e.Fetch(ctx, MethodOptionRef, args))
		if err != nil {
			return nil, err
		}
		res, err = cndata.BuildRefTable(optionRefSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
			// the file lists product summary rows too
			if row.InstrumentID == row.ProductID || !cndata.MatchProduct(params, row.ProductID) {
				return false, nil
			}
			fillCommon(row, rec)
			return true, fillOption(row, rec)
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.UnsupportMarket
	}
	e.DumpRef(market, date, res)
	return res, nil
}

func fillCommon(row *cndata.ReferenceRow, rec map[string]string) {
	row.Unit = leadNum(reLeadNum, rec[colUnit])
	row.TickSize = leadNum(reLeadNum, rec[colTick])
	row.PositionLimit = leadNum(reDigits, rec[colPosLimit])
}

func fillOption(row *cndata.ReferenceRow, rec map[string]string) *errs.Error {
	switch strings.TrimSpace(rec[colCallPut]) {
	case "看涨":
		row.CallPut = cndata.CallOpt
	case "看跌":
		row.CallPut = cndata.PutOpt
	default:
		return errs.NewMsg(errs.CodeInvalidResponse, "bad call/put of %s: %q", row.InstrumentID, rec[colCallPut])
	}
	row.ExecType = cndata.ExecEuropean
	if strings.TrimSpace(rec[colExec]) == "美式" {
		row.ExecType = cndata.ExecAmerican
	}
	row.DeliveryMethod = cndata.DeliverCash
	if strings.TrimSpace(rec[colSettle]) == "实物" {
		row.DeliveryMethod = cndata.DeliverPhysical
	}
	// SR309C6000 -> SR309
	size := len(row.ProductID) + 3
	if len(row.InstrumentID) < size {
		return errs.NewMsg(errs.CodeInvalidResponse, "bad option id: %s", row.InstrumentID)
	}
	row.Underlying = row.InstrumentID[:size]
	return nil
}

func (e *CZCE) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	args, err := dayArgs(date)
	if err != nil {
		return nil, err
	}
	method := MethodFutureDaily
	switch market {
	case cndata.MarketFutures:
	case cndata.MarketOption:
		method = MethodOptionDaily
	default:
		return nil, errs.UnsupportMarket
	}
	tables, err := cndata.HtmlTables(e.Fetch(ctx, method, args), 1)
	if err != nil {
		return nil, err
	}
	tbl := tables[0]
	rows := tbl.Rows
	// trailing 总计 row
	if n := len(rows); n > 0 && len(rows[n-1]) > 0 && strings.Contains(rows[n-1][0], "计") {
		rows = rows[:n-1]
	}
	var recs []map[string]string
	for _, rec := range utils.ZipRecords(tbl.FirstLevel(), rows) {
		if utils.IsPlaceholder(rec["今结算"]) || strings.Contains(rec["合约代码"], "计") {
			continue
		}
		rec[srcDay] = date
		recs = append(recs, rec)
	}
	res, err := cndata.BuildEodTable(eodSpecs, recs, func(row *cndata.EodRow, rec map[string]string) (bool, *errs.Error) {
		return cndata.MatchProduct(params, reProduct.FindString(row.InstrumentID)), nil
	})
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}
