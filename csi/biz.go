package csi

import (
	"context"
	"strconv"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

/*
FetchReference the list of CSI indices, sorted by index code.
The list has no history: date is only validated.
*/
func (e *CSI) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (cndata.ReferenceTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if market != cndata.MarketIndex {
		return nil, errs.UnsupportMarket
	}
	if !utils.IsCompactDate(date) {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	args := map[string]interface{}{
		"indexFilter": map[string]interface{}{
			"indexSeries": indexSeries,
		},
		"pager": map[string]interface{}{
			"pageNum":  1,
			"pageSize": pageSize,
		},
		"sorter": map[string]interface{}{
			"sortField": "null",
			"sortOrder": nil,
		},
	}
	var data map[string]interface{}
	if err := cndata.DecodeJson(e.Fetch(ctx, MethodIndexList, args), &data); err != nil {
		return nil, err
	}
	if ok, exists := data["success"].(bool); exists && !ok {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "index list refused: %v", data["msg"])
	}
	recs, err := cndata.ListRecords(data, "data")
	if err != nil {
		return nil, err
	}
	if total, _ := strconv.Atoi(utils.Str(data["total"])); total > len(recs) {
		log.Ctx(ctx).Warn("index list truncated", zap.Int("total", total), zap.Int("got", len(recs)))
	}
	res, err := cndata.BuildRefTable(indexSpecs, recs, func(row *cndata.ReferenceRow, rec map[string]string) (bool, *errs.Error) {
		return cndata.MatchProduct(params, row.ProductID), nil
	})
	if err != nil {
		return nil, err
	}
	res.SortByID()
	e.DumpRef(market, date, res)
	return res, nil
}
