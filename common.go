package cndata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	hostFlowChans = map[string]chan struct{}{}
	hostFlowLock  deadlock.Mutex
)

func GetHostFlowChan(host string) chan struct{} {
	hostFlowLock.Lock()
	out, ok := hostFlowChans[host]
	if !ok {
		out = make(chan struct{}, HostHttpConcurr)
		hostFlowChans[host] = out
	}
	hostFlowLock.Unlock()
	return out
}

func trimText(raw string) string {
	return strings.TrimSpace(raw)
}

// DecodeJson parse a json reply into out; numbers are kept as json.Number
func DecodeJson(rsp *HttpRes, out interface{}) *errs.Error {
	if rsp.Error != nil {
		return rsp.Error
	}
	if err := utils.UnmarshalString(rsp.Content, out); err != nil {
		return errs.NewMsg(errs.CodeUnmarshalFail, "%s: %v", rsp.Url, err)
	}
	return nil
}

/*
DecodeJsonp parse a `callback(...)` reply. a missing wrapper is a structural failure
*/
func DecodeJsonp(rsp *HttpRes, out interface{}) *errs.Error {
	if rsp.Error != nil {
		return rsp.Error
	}
	text, err := utils.StripJsonp(rsp.Content)
	if err != nil {
		return errs.NewMsg(errs.CodeInvalidResponse, "%s: %v", rsp.Url, err)
	}
	if err = utils.UnmarshalString(text, out); err != nil {
		return errs.NewMsg(errs.CodeUnmarshalFail, "%s: %v", rsp.Url, err)
	}
	return nil
}

/*
ListObjects read data[key] as a list of json objects. null gives an empty list
*/
func ListObjects(data map[string]interface{}, key string) ([]map[string]interface{}, *errs.Error) {
	raw, ok := data[key]
	if !ok {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "key %s missing", key)
	}
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "key %s should be list, got %T", key, raw)
	}
	res := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]interface{})
		if !ok {
			return nil, errs.NewMsg(errs.CodeInvalidResponse, "item of %s should be object, got %T", key, it)
		}
		res = append(res, obj)
	}
	return res, nil
}

// ListRecords read data[key] as a list of json objects flattened to text records
func ListRecords(data map[string]interface{}, key string) ([]map[string]string, *errs.Error) {
	objs, err := ListObjects(data, key)
	if err != nil || objs == nil {
		return nil, err
	}
	return utils.ArrValStr(objs), nil
}

/*
RowRecords read data[key] as a list of positional rows, keyed by cols
*/
func RowRecords(data map[string]interface{}, key string, cols []string) ([]map[string]string, *errs.Error) {
	raw, ok := data[key]
	if !ok {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "key %s missing", key)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "key %s should be list, got %T", key, raw)
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		arr, ok := it.([]interface{})
		if !ok {
			return nil, errs.NewMsg(errs.CodeInvalidResponse, "row of %s should be list, got %T", key, it)
		}
		if len(arr) < len(cols) {
			return nil, errs.NewMsg(errs.CodeInvalidResponse, "row of %s has %d cells, %d expected", key, len(arr), len(cols))
		}
		row := make([]string, len(arr))
		for i, v := range arr {
			row[i] = utils.Str(v)
		}
		rows = append(rows, row)
	}
	return utils.ZipRecords(cols, rows), nil
}

func XmlRecords(rsp *HttpRes) ([]map[string]string, *errs.Error) {
	if rsp.Error != nil {
		return nil, rsp.Error
	}
	recs, err := utils.ParseXmlRecords([]byte(rsp.Content))
	if err != nil {
		return nil, errs.NewMsg(errs.CodeUnmarshalFail, "%s: %v", rsp.Url, err)
	}
	return recs, nil
}

func HtmlTables(rsp *HttpRes, minHeader int) ([]*utils.HtmlTable, *errs.Error) {
	if rsp.Error != nil {
		return nil, rsp.Error
	}
	tables, err := utils.ParseHtmlTables([]byte(rsp.Content), minHeader)
	if err != nil {
		return nil, errs.NewMsg(errs.CodeUnmarshalFail, "%s: %v", rsp.Url, err)
	}
	if len(tables) == 0 {
		return nil, errs.NewMsg(errs.CodeInvalidResponse, "no table in %s", rsp.Url)
	}
	return tables, nil
}

func XlsxRecords(rsp *HttpRes, sheet, skip int) ([]map[string]string, *errs.Error) {
	if rsp.Error != nil {
		return nil, rsp.Error
	}
	_, recs, err := utils.ReadXlsx([]byte(rsp.Content), sheet, skip)
	if err != nil {
		return nil, errs.NewMsg(errs.CodeUnmarshalFail, "%s: %v", rsp.Url, err)
	}
	return recs, nil
}

/*
BuildRefTable convert records with specs; fill runs after the generic mapping and may return false to drop the row
*/
func BuildRefTable(specs []ColSpec, recs []map[string]string, fill func(row *ReferenceRow, rec map[string]string) (bool, *errs.Error)) (ReferenceTable, *errs.Error) {
	res := make(ReferenceTable, 0, len(recs))
	for _, rec := range recs {
		row, err := ParseRef(specs, rec)
		if err != nil {
			return nil, err
		}
		if fill != nil {
			keep, err := fill(row, rec)
			if err != nil {
				return nil, err
			}
			if !keep {
				continue
			}
		}
		res = append(res, row)
	}
	return res, nil
}

func BuildEodTable(specs []ColSpec, recs []map[string]string, fill func(row *EodRow, rec map[string]string) (bool, *errs.Error)) (EodTable, *errs.Error) {
	res := make(EodTable, 0, len(recs))
	for _, rec := range recs {
		row, err := ParseEod(specs, rec)
		if err != nil {
			return nil, err
		}
		if fill != nil {
			keep, err := fill(row, rec)
			if err != nil {
				return nil, err
			}
			if !keep {
				continue
			}
		}
		res = append(res, row)
	}
	return res, nil
}

func decText(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

var refHeader = []string{FldInstrumentID, FldProductID, FldName, FldUnit, FldTickSize, FldListPrice,
	FldUpperLimitPrice, FldLowerLimitPrice, FldLimitRatio, FldPositionLimit, FldFirstTradingDay,
	FldLastTradingDay, FldFirstDeliveryDay, FldLastDeliveryDay, FldCallPut, FldStrikePrice, FldExecType,
	FldDeliveryMethod, FldUnderlying, "Margin"}

var eodHeader = []string{FldInstrumentID, FldTradingDay, FldCurrency, FldPreClosePrice, FldOpenPrice,
	FldHighPrice, FldLowPrice, FldClosePrice, FldPreSettlePrice, FldSettlePrice, FldBidPrice, FldAskPrice,
	FldVolume, FldTurnover, FldOpenInterest}

func (r *ReferenceRow) Record() []string {
	return []string{r.InstrumentID, r.ProductID, r.Name, decText(r.Unit), decText(r.TickSize),
		decText(r.ListPrice), decText(r.UpperLimitPrice), decText(r.LowerLimitPrice), decText(r.LimitRatio),
		decText(r.PositionLimit), r.FirstTradingDay, r.LastTradingDay, r.FirstDeliveryDay, r.LastDeliveryDay,
		r.CallPut, decText(r.StrikePrice), r.ExecType, r.DeliveryMethod, r.Underlying, decText(r.Margin)}
}

func (r *EodRow) Record() []string {
	return []string{r.InstrumentID, r.TradingDay, r.Currency, decText(r.PreClosePrice), decText(r.OpenPrice),
		decText(r.HighPrice), decText(r.LowPrice), decText(r.ClosePrice), decText(r.PreSettlePrice),
		decText(r.SettlePrice), decText(r.BidPrice), decText(r.AskPrice), decText(r.Volume),
		decText(r.Turnover), decText(r.OpenInterest)}
}

func (e *Exchange) dumpPath(kind, market, date string) string {
	return filepath.Join(e.Config.DumpDir, fmt.Sprintf("%s_%s_%s_%s.csv", e.ID, market, kind, date))
}

// DumpRef write the table as csv under DumpDir, for debugging only
func (e *Exchange) DumpRef(market, date string, t ReferenceTable) {
	if e.Config == nil || e.Config.DumpDir == "" {
		return
	}
	rows := make([][]string, 0, len(t))
	for _, r := range t {
		rows = append(rows, r.Record())
	}
	path := e.dumpPath(ApiReference, market, date)
	if err := utils.WriteCsv(path, refHeader, rows); err != nil {
		log.Warn("dump reference fail", zap.String("path", path), zap.Error(err))
	}
}

func (e *Exchange) DumpEod(market, date string, t EodTable) {
	if e.Config == nil || e.Config.DumpDir == "" {
		return
	}
	rows := make([][]string, 0, len(t))
	for _, r := range t {
		rows = append(rows, r.Record())
	}
	path := e.dumpPath(ApiEod, market, date)
	if err := utils.WriteCsv(path, eodHeader, rows); err != nil {
		log.Warn("dump eod fail", zap.String("path", path), zap.Error(err))
	}
}

/*
MatchProduct product filter shared by sources accepting ParamProduct; empty matches all
*/
func MatchProduct(params map[string]interface{}, product string) bool {
	want := utils.GetMapVal(params, ParamProduct, "")
	return want == "" || strings.EqualFold(want, product)
}

func GetMode(params map[string]interface{}) string {
	return utils.GetMapVal(params, ParamMode, ModeOngoing)
}
