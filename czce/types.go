package czce

import (
	"github.com/banbox/cndata"
)

type CZCE struct {
	*cndata.Exchange
}
