package sse

import (
	"github.com/banbox/cndata"
)

type SSE struct {
	*cndata.Exchange
}
