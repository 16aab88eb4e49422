package csi

import (
	"github.com/banbox/cndata"
)

type CSI struct {
	*cndata.Exchange
}
