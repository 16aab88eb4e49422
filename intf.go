package cndata

import (
	"context"

	"github.com/banbox/cndata/errs"
)

/*
DataSource one upstream exchange or vendor producing normalized tables.
Each call is independent: fetch, parse, clean and return.
*/
type DataSource interface {
	Info() *ExgInfo
	HasApi(kind, market string) bool
	Markets(kind string) []string

	// FetchReference static contract attributes for the trading day
	FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (ReferenceTable, *errs.Error)
	// FetchEod end-of-day prices and volumes for the trading day
	FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (EodTable, *errs.Error)
}
