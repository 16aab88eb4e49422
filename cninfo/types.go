package cninfo

import (
	"github.com/banbox/cndata"
)

type CNINFO struct {
	*cndata.Exchange
}

// NoticeGroup trading tips of one category published for a day
type NoticeGroup struct {
	Category string
	Items    []map[string]string
}
