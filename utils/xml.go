package utils

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

/*
ParseXmlRecords read a flat xml document: every child of the root element is one record,
and its children (plus attributes) are the fields.
*/
func ParseXmlRecords(data []byte) ([]map[string]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	var res []map[string]string
	var cur map[string]string
	var field string
	var text strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth += 1
			if depth == 2 {
				cur = make(map[string]string)
				for _, attr := range t.Attr {
					cur[attr.Name.Local] = attr.Value
				}
			} else if depth == 3 {
				field = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth == 3 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 3 && cur != nil {
				cur[field] = strings.TrimSpace(text.String())
			} else if depth == 2 && cur != nil {
				res = append(res, cur)
				cur = nil
			}
			depth -= 1
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unclosed xml document")
	}
	return res, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "gbk", "gb2312", "gb18030":
		return simplifiedchinese.GB18030.NewDecoder().Reader(input), nil
	case "utf-8", "utf8", "":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported xml charset: %s", charset)
}
