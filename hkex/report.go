package hkex

import (
	"strings"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
	"github.com/shopspring/decimal"
)

func reportLines(text string) []string {
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, "|", "")
	return pageLines(text)
}

func isExpired(cells []string) bool {
	return strings.Contains(strings.Join(cells, ""), "EXPIRED")
}

/*
parseFutureReport contract lines of a futures day report.
Ids are product + YYMM: HSI with JUL-23 gives HSI2307.
*/
func parseFutureReport(text, date string, rpt *dayReport) ([]map[string]string, *errs.Error) {
	layout := rpt.Layout
	product := strings.ToUpper(rpt.Product)
	var res []map[string]string
	for _, line := range reportLines(text) {
		if layout.Header != "" && strings.Contains(line, layout.Header) {
			if code := utils.RegexGroup(reBlockCode, line, 1); code != "" {
				product = code
			}
			continue
		}
		if strings.Contains(line, "Calendar Spread") {
			continue
		}
		cells := strings.Fields(line)
		if len(cells) == 0 {
			continue
		}
		match := reFutMonth.FindStringSubmatch(cells[0])
		if match == nil || months[match[1]] == "" || isExpired(cells) {
			continue
		}
		if len(cells) != len(layout.Cols)+1 {
			return nil, errs.NewMsg(errs.CodeInvalidResponse, "%s: %d cells in %q, %d expected",
				rpt.Name, len(cells), line, len(layout.Cols)+1)
		}
		rec := utils.ZipRecords(layout.Cols, [][]string{cells[1:]})[0]
		rec[srcID] = product + match[2] + months[match[1]]
		rec[srcDay] = date
		if err := mergeSessions(rec); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

/*
parseOptionReport contract lines of an options day report.
Ids are product + YYMM + C/P + strike, weekly series add W + day: HSI2307W28C20000.
Lines of other lengths (totals, spreads) are skipped.
*/
func parseOptionReport(text, date string, rpt *dayReport) ([]map[string]string, *errs.Error) {
	layout := rpt.Layout
	product := rpt.Product
	var res []map[string]string
	for _, line := range reportLines(text) {
		if layout.Header != "" && strings.Contains(line, layout.Header) {
			if code := utils.RegexGroup(reBlockCode, line, 1); code != "" {
				product = code
			} else if cells := strings.Fields(line); len(cells) > 0 {
				product = cells[0]
			}
			continue
		}
		cells := strings.Fields(line)
		if len(cells) != len(layout.Cols)+1 || isExpired(cells) {
			continue
		}
		match := reOptMonth.FindStringSubmatch(cells[0])
		if match == nil || months[match[2]] == "" {
			continue
		}
		maturity := match[3] + months[match[2]]
		if match[1] != "" {
			maturity += "W" + match[1]
		}
		rec := utils.ZipRecords(layout.Cols, [][]string{cells[1:]})[0]
		rec[srcID] = product + maturity + rec["cp"] + rec["strike"]
		rec[srcDay] = date
		if err := mergeSessions(rec); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

func sessionNum(rec map[string]string, key string) (decimal.Decimal, *errs.Error) {
	num, err := utils.ParseNullDec(rec[key], true)
	if err != nil {
		return decimal.Zero, errs.NewMsg(errs.CodeInvalidResponse, "bad %s: %q", key, rec[key])
	}
	return num.Decimal, nil
}

/*
mergeSessions combine the after-hours (AHT) and day (DT) sessions of reports having both.
Open comes from AHT when it traded, the low ignores a session without trades.
*/
func mergeSessions(rec map[string]string) *errs.Error {
	if _, ok := rec["aht_open"]; !ok {
		return nil
	}
	vals := make(map[string]decimal.Decimal)
	for _, key := range []string{"aht_open", "aht_high", "aht_low", "aht_volume", "dt_open", "dt_high", "dt_low", "dt_volume"} {
		num, err := sessionNum(rec, key)
		if err != nil {
			return err
		}
		vals[key] = num
	}
	open := vals["aht_open"]
	if open.IsZero() {
		open = vals["dt_open"]
	}
	low := vals["aht_low"]
	if low.IsZero() || (!vals["dt_low"].IsZero() && vals["dt_low"].LessThan(low)) {
		low = vals["dt_low"]
	}
	rec["open"] = open.String()
	rec["high"] = decimal.Max(vals["aht_high"], vals["dt_high"]).String()
	rec["low"] = low.String()
	rec["volume"] = vals["aht_volume"].Add(vals["dt_volume"]).String()
	return nil
}
