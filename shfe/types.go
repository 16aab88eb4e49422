package shfe

import (
	"github.com/banbox/cndata"
)

type SHFE struct {
	*cndata.Exchange
}

// limitArgs daily limit ratios (futures) or limit prices (options) of one contract
type limitArgs struct {
	Upper string
	Lower string
}
