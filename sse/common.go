package sse

import (
	"context"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/utils"
)

/*
getYunhq request a quote endpoint. replies are wrapped in a jsonp callback
and carry a cache-busting token.
*/
func (e *SSE) getYunhq(ctx context.Context, method string, args map[string]interface{}) (map[string]interface{}, *errs.Error) {
	token := utils.RandToken()
	args["callback"] = "jsonpCallback" + token
	args["_"] = token
	var data map[string]interface{}
	if err := cndata.DecodeJsonp(e.Fetch(ctx, method, args), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// getQuery request a query.sse.com.cn list and return its result records
func (e *SSE) getQuery(ctx context.Context, method string, args map[string]interface{}) ([]map[string]string, *errs.Error) {
	token := utils.RandToken()
	args["jsonCallBack"] = "jsonpCallback" + token
	args["_"] = token
	var data map[string]interface{}
	if err := cndata.DecodeJsonp(e.Fetch(ctx, method, args), &data); err != nil {
		return nil, err
	}
	return cndata.ListRecords(data, "result")
}

func payloadDay(data map[string]interface{}) string {
	return utils.Str(data["date"])
}

func isHistory(params map[string]interface{}) bool {
	return utils.GetMapVal(params, cndata.ParamHistory, false) || cndata.GetMode(params) == cndata.ModeHistory
}

func checkDate(date string, allowAll bool) *errs.Error {
	if utils.IsCompactDate(date) || (allowAll && date == cndata.DateAll) {
		return nil
	}
	return errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
}

func pluck(recs []map[string]string, key string) []string {
	res := make([]string, 0, len(recs))
	seen := make(map[string]bool, len(recs))
	for _, rec := range recs {
		id := rec[key]
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		res = append(res, id)
	}
	return res
}
