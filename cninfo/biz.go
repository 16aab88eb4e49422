package cninfo

import (
	"context"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

func checkDate(date string) *errs.Error {
	if !utils.IsCompactDate(date) {
		return errs.NewMsg(errs.CodeParamInvalid, "date should be YYYYMMDD, got %q", date)
	}
	return nil
}

/*
FetchEod daily stock quotes of one exchange from the cninfo data api.
ParamExchange picks sse (default) or szse.
*/
func (e *CNINFO) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (cndata.EodTable, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, market)
	if market != cndata.MarketStock {
		return nil, errs.UnsupportMarket
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	exgName := utils.GetMapVal(params, ParamExchange, "sse")
	code, ok := exchangeCodes[exgName]
	if !ok {
		return nil, errs.NewMsg(errs.CodeParamInvalid, "unknown %s: %s", ParamExchange, exgName)
	}
	if rsp := e.Fetch(ctx, MethodSpiderCheck, nil); rsp.Error != nil {
		log.Ctx(ctx).Warn("spidercheck fail", zap.String("err", rsp.Error.Short()))
	}
	args := map[string]interface{}{
		"tdate":  utils.DashDate(date),
		"market": code,
	}
	var data map[string]interface{}
	if err := cndata.DecodeJson(e.Fetch(ctx, MethodStockDay, args), &data); err != nil {
		return nil, err
	}
	if resCode := utils.Str(data["resultcode"]); resCode != "" && resCode != "200" {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "p_sysapi1007 code %s: %v", resCode, data["resultmsg"])
	}
	recs, err := cndata.ListRecords(data, "records")
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		rec[srcDay] = date
	}
	res, err := cndata.BuildEodTable(stockSpecs, recs, nil)
	if err != nil {
		return nil, err
	}
	e.DumpEod(market, date, res)
	return res, nil
}

/*
FetchNotices trading tips of the day (suspensions, resumptions, meetings, dividends...),
grouped by category in upstream order.
*/
func (e *CNINFO) FetchNotices(ctx context.Context, date string) ([]*NoticeGroup, *errs.Error) {
	ctx = log.WithExchange(ctx, e.ID, "notice")
	if err := checkDate(date); err != nil {
		return nil, err
	}
	args := map[string]interface{}{"queryDate": utils.DashDate(date)}
	var data map[string]interface{}
	if err := cndata.DecodeJson(e.Fetch(ctx, MethodMemoQuery, args), &data); err != nil {
		return nil, err
	}
	cluster, ok := data["clusterSRTbTrade0112"].(map[string]interface{})
	if !ok {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "clusterSRTbTrade0112 missing")
	}
	groups, err := cndata.ListObjects(cluster, "srTbTrade0112s")
	if err != nil {
		return nil, err
	}
	res := make([]*NoticeGroup, 0, len(groups))
	for _, grp := range groups {
		items, err := cndata.ListRecords(grp, "tbTrade0112s")
		if err != nil {
			return nil, err
		}
		res = append(res, &NoticeGroup{
			Category: utils.Str(grp["tradingTipsName"]),
			Items:    items,
		})
	}
	log.Ctx(ctx).Debug("notices", zap.String("date", date), zap.Int("groups", len(res)))
	return res, nil
}
