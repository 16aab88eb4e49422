package gfex

import (
	"github.com/banbox/cndata"
)

type GFEX struct {
	*cndata.Exchange
}
