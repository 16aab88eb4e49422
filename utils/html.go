package utils

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reBlank = regexp.MustCompile(`[\r\n]+|\s{2,}`)

/*
HtmlTable a <table> flattened into a text grid.
Header holds one slice per header row, already expanded over colspan/rowspan.
*/
type HtmlTable struct {
	Header [][]string
	Rows   [][]string
}

/*
ParseHtmlTables read every <table> of an html page.
minHeader: rows taken as header when the table marks none with <thead>/<th>
*/
func ParseHtmlTables(data []byte, minHeader int) ([]*HtmlTable, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var res []*HtmlTable
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		res = append(res, parseHtmlTable(tbl, minHeader))
	})
	return res, nil
}

func parseHtmlTable(tbl *goquery.Selection, minHeader int) *HtmlTable {
	var trs []*goquery.Selection
	headNum := 0
	leading := true
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// skip rows of nested tables
		if tr.ParentsFiltered("table").First().Get(0) != tbl.Get(0) {
			return
		}
		trs = append(trs, tr)
		inHead := tr.ParentsFiltered("thead").Length() > 0
		cells := tr.Children().Filter("th,td")
		allTh := cells.Length() > 0 && cells.Filter("th").Length() == cells.Length()
		if leading && (inHead || allTh) {
			headNum += 1
		} else {
			leading = false
		}
	})
	if headNum < minHeader {
		headNum = minHeader
	}
	grid := expandRows(trs)
	if headNum > len(grid) {
		headNum = len(grid)
	}
	res := &HtmlTable{Header: grid[:headNum]}
	for _, row := range grid[headNum:] {
		if len(row) > 0 {
			res.Rows = append(res.Rows, row)
		}
	}
	return res
}

type cellSpan struct {
	left int
	text string
}

func expandRows(trs []*goquery.Selection) [][]string {
	pending := map[int]*cellSpan{}
	out := make([][]string, 0, len(trs))
	for _, tr := range trs {
		var line []string
		col := 0
		fill := func() {
			for {
				sp, ok := pending[col]
				if !ok {
					return
				}
				line = append(line, sp.text)
				sp.left -= 1
				if sp.left <= 0 {
					delete(pending, col)
				}
				col += 1
			}
		}
		tr.Children().Filter("th,td").Each(func(_ int, cell *goquery.Selection) {
			fill()
			text := cellText(cell)
			colSpan := spanAttr(cell, "colspan")
			rowSpan := spanAttr(cell, "rowspan")
			for i := 0; i < colSpan; i++ {
				line = append(line, text)
				if rowSpan > 1 {
					pending[col] = &cellSpan{left: rowSpan - 1, text: text}
				}
				col += 1
			}
		})
		fill()
		out = append(out, line)
	}
	return out
}

func cellText(cell *goquery.Selection) string {
	text := strings.ReplaceAll(cell.Text(), "\u00a0", " ")
	return strings.TrimSpace(reBlank.ReplaceAllString(text, " "))
}

func spanAttr(cell *goquery.Selection, name string) int {
	val, err := strconv.Atoi(strings.TrimSpace(cell.AttrOr(name, "1")))
	if err != nil || val < 1 {
		return 1
	}
	return val
}

/*
Columns flatten multi-row headers by joining levels with sep: 涨跌停板_涨停板价位(元)
*/
func (t *HtmlTable) Columns(sep string) []string {
	width := 0
	for _, row := range t.Header {
		width = max(width, len(row))
	}
	cols := make([]string, width)
	for i := 0; i < width; i++ {
		var parts []string
		for _, row := range t.Header {
			if i < len(row) {
				parts = append(parts, row[i])
			}
		}
		cols[i] = strings.Join(parts, sep)
	}
	return cols
}

// FirstLevel the top header row
func (t *HtmlTable) FirstLevel() []string {
	if len(t.Header) == 0 {
		return nil
	}
	return t.Header[0]
}

// Records key each body row by cols; missing cells become ""
func (t *HtmlTable) Records(cols []string) []map[string]string {
	return ZipRecords(cols, t.Rows)
}

func ZipRecords(cols []string, rows [][]string) []map[string]string {
	res := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(cols))
		for i, c := range cols {
			if i < len(row) {
				rec[c] = row[i]
			} else {
				rec[c] = ""
			}
		}
		res = append(res, rec)
	}
	return res
}
