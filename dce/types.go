package dce

import (
	"github.com/banbox/cndata"
)

type DCE struct {
	*cndata.Exchange
}
