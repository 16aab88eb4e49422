package bex

import (
	"sort"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/cffex"
	"github.com/banbox/cndata/cninfo"
	"github.com/banbox/cndata/csi"
	"github.com/banbox/cndata/czce"
	"github.com/banbox/cndata/dce"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/gfex"
	"github.com/banbox/cndata/hkex"
	"github.com/banbox/cndata/shfe"
	"github.com/banbox/cndata/sse"
	"github.com/banbox/cndata/szse"
	"github.com/banbox/cndata/utils"
)

func init() {
	newExgs = map[string]FuncNewExchange{
		"cffex":  cffex.NewExchange,
		"shfe":   shfe.NewExchange,
		"dce":    dce.NewExchange,
		"czce":   czce.NewExchange,
		"gfex":   gfex.NewExchange,
		"sse":    sse.NewExchange,
		"szse":   szse.NewExchange,
		"hkex":   hkex.NewExchange,
		"csi":    WrapNew(csi.New),
		"cninfo": WrapNew(cninfo.New),
	}
}

func New(name string, options map[string]interface{}) (cndata.DataSource, *errs.Error) {
	fn, ok := newExgs[name]
	if !ok {
		return nil, errs.NewMsg(errs.CodeBadExgName, "invalid exg name: %s", name)
	}
	return fn(utils.SafeParams(options))
}

// Names registered source names, sorted
func Names() []string {
	res := utils.KeysOfMap(newExgs)
	sort.Strings(res)
	return res
}
