package utils

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

/*
ReadXlsx read one sheet of a workbook into header + text records.
skip: leading rows dropped before the header row
*/
func ReadXlsx(data []byte, sheetIdx, skip int) ([]string, []map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if sheetIdx >= len(sheets) {
		return nil, nil, fmt.Errorf("sheet %d not found, %d sheets", sheetIdx, len(sheets))
	}
	rows, err := f.GetRows(sheets[sheetIdx], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= skip {
		return nil, nil, fmt.Errorf("sheet has %d rows, header expected after %d", len(rows), skip)
	}
	header := rows[skip]
	var body [][]string
	for _, row := range rows[skip+1:] {
		if len(row) > 0 {
			body = append(body, row)
		}
	}
	return header, ZipRecords(header, body), nil
}

// BuildXlsx write rows into a single sheet workbook
func BuildXlsx(rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
