package hkex

import (
	"github.com/banbox/cndata"
)

type HKEX struct {
	*cndata.Exchange
}

/*
reportLayout how the contract lines of one derivatives day report are read.
Cols name the cells after the contract month.
*/
type reportLayout struct {
	Cols []string
	// lines holding Header start a block; the block product is the code in parentheses
	Header string
}

// dayReport one per-product report to download
type dayReport struct {
	Product string
	Name    string // file name prefix of the report
	Layout  *reportLayout
}
