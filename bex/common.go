package bex

import (
	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
)

type FuncNewExchange = func(map[string]interface{}) (cndata.DataSource, *errs.Error)

var newExgs map[string]FuncNewExchange

func WrapNew[T cndata.DataSource](fn func(map[string]interface{}) (T, *errs.Error)) FuncNewExchange {
	return func(options map[string]interface{}) (cndata.DataSource, *errs.Error) {
		return fn(options)
	}
}
