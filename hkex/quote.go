package hkex

import (
	"strings"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
)

// pageLines split a report page into lines without page breaks
func pageLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		lines[i] = strings.ReplaceAll(line, pageBreak, "")
	}
	return lines
}

func sepIndexes(lines []string, sep string) []int {
	var res []int
	for i, line := range lines {
		if strings.TrimSpace(line) == sep {
			res = append(res, i)
		}
	}
	return res
}

/*
parseQuotes read the daily quotation page of the stock market.
The sales records block lies between the 2nd and 3rd short separators and gives open prices.
The quotations block lies between the 3rd and 2nd last long separators, one stock per line.
*/
func parseQuotes(text, date string) ([]map[string]string, *errs.Error) {
	lines := pageLines(text)
	sales := sepIndexes(lines, sepSales)
	quotes := sepIndexes(lines, sepQuote)
	if len(sales) < 3 || len(quotes) < 3 {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "quotation page layout changed, separators: %d/%d",
			len(sales), len(quotes))
	}
	opens := parseOpens(lines[sales[1]+1 : sales[2]])
	var res []map[string]string
	for _, line := range lines[quotes[len(quotes)-3]+1 : quotes[len(quotes)-2]] {
		line = strings.TrimLeft(line, "*")
		if !reQuoteLine.MatchString(line) {
			continue
		}
		cells := strings.Fields(strings.ReplaceAll(line, ",", ""))
		code := utils.ZFill(strings.Split(cells[0], "#")[0], 5)
		rec := map[string]string{srcID: code, srcDay: date}
		if strings.Contains(line, "TRADING SUSPENDED") || strings.Contains(line, "TRADING HALTED") {
			if len(cells) < 4 {
				return nil, errs.NewMsg(errs.CodeInvalidResponse, "bad suspended line: %s", line)
			}
			rec["currency"] = cells[len(cells)-4]
			for _, col := range quoteCols[1:] {
				rec[col] = "0"
			}
			rec["open"] = "0"
		} else {
			if len(cells) < len(quoteCols)+1 {
				return nil, errs.NewMsg(errs.CodeInvalidResponse, "bad quotation line: %s", line)
			}
			tail := cells[len(cells)-len(quoteCols):]
			for i, col := range quoteCols {
				rec[col] = tail[i]
			}
			rec["open"] = opens[code]
		}
		res = append(res, rec)
	}
	return res, nil
}

/*
parseOpens open price of each stock: the first sales record without a P/D/Y condition mark.
Records look like 2,000-43.25 or P500-43.00 inside <...>.
*/
func parseOpens(lines []string) map[string]string {
	trades := make(map[string][]string)
	var codes []string
	for _, line := range lines {
		if !strings.Contains(line, "<") || strings.HasPrefix(line, "      ") {
			continue
		}
		cells := strings.Fields(strings.ReplaceAll(line, ",", ""))
		if len(cells) == 0 || !reQuoteLine.MatchString(cells[0]) {
			continue
		}
		code := utils.ZFill(cells[0], 5)
		if _, ok := trades[code]; !ok {
			codes = append(codes, code)
		}
		trades[code] = append(trades[code], cells[1:]...)
	}
	res := make(map[string]string, len(codes))
	for _, code := range codes {
		res[code] = "0"
		for _, cell := range trades[code] {
			match := reSalesTrade.FindStringSubmatch(strings.Trim(cell, "<>"))
			if match == nil || skipMarks[match[1]] {
				continue
			}
			res[code] = match[2]
			break
		}
	}
	return res
}
