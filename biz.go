package cndata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/banbox/cndata/calendar"
	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"go.uber.org/zap"
)

func (e *Exchange) Init() *errs.Error {
	cfg, err := ParseOptions(e.Options)
	if err != nil {
		return err
	}
	e.Config = cfg
	e.HttpClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
	// explicit Proxy option first, then HTTP(S)_PROXY from environment; "no" disables
	if cfg.Proxy == "no" {
		e.Proxy = nil
	} else if cfg.Proxy != "" {
		proxy, err_ := url.Parse(cfg.Proxy)
		if err_ != nil {
			return errs.New(errs.CodeParamInvalid, err_)
		}
		e.Proxy = http.ProxyURL(proxy)
	} else {
		e.Proxy = http.ProxyFromEnvironment
	}
	if e.Proxy != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = e.Proxy
		e.HttpClient.Transport = transport
	}
	e.UserAgent = cfg.UserAgent
	headers := make(map[string]string)
	for k, v := range DefReqHeaders {
		headers[k] = v
	}
	for k, v := range e.ReqHeaders {
		headers[k] = v
	}
	reqHeaders := utils.GetMapVal(e.Options, OptReqHeaders, map[string]string{})
	for k, v := range reqHeaders {
		headers[k] = v
	}
	e.ReqHeaders = headers
	retries := make(map[string]int)
	for k, v := range DefRetries {
		retries[k] = v
	}
	for k, v := range e.Retries {
		retries[k] = v
	}
	retries[RetryBatch] = cfg.BatchTries
	e.Retries = retries
	e.Products, err = LoadProducts(cfg.ProductsPath)
	if err != nil {
		return err
	}
	utils.SetFieldBy(&e.Calendar, e.Options, OptCalendar, nil)
	if e.Calendar == nil && cfg.CalendarPath != "" {
		cal, err := calendar.Load(cfg.CalendarPath)
		if err != nil {
			return err
		}
		e.Calendar = cal
	}
	if e.Sign == nil {
		e.Sign = e.SignReq
	}
	for name, api := range e.Apis {
		if api.Method == "" {
			api.Method = MethodGet
		}
		api.Url = e.GetHost(api.Host) + "/" + strings.TrimPrefix(api.Path, "/")
		parsed, err_ := url.Parse(api.Url)
		if err_ != nil {
			return errs.NewMsg(errs.CodeParamInvalid, "bad api %s: %v", name, err_)
		}
		api.RawHost = parsed.Host
	}
	return nil
}

func (e *Exchange) Info() *ExgInfo {
	return e.ExgInfo
}

func (e *Exchange) HasApi(kind, market string) bool {
	items, ok := e.Has[market]
	if !ok {
		return false
	}
	return items[kind]&(HasOk|HasEmulated) != 0
}

func (e *Exchange) Markets(kind string) []string {
	var res []string
	for _, market := range AllMarkets {
		if e.HasApi(kind, market) {
			res = append(res, market)
		}
	}
	return res
}

func (e *Exchange) FetchReference(ctx context.Context, market, date string, params map[string]interface{}) (ReferenceTable, *errs.Error) {
	return nil, errs.NotImplement
}

func (e *Exchange) FetchEod(ctx context.Context, market, date string, params map[string]interface{}) (EodTable, *errs.Error) {
	return nil, errs.NotImplement
}

func (e *Exchange) GetHost(name string) string {
	if host, ok := e.Hosts.Prod[name]; ok {
		return host
	}
	return name
}

func (e *Exchange) GetRetry(name string) int {
	if num, ok := e.Retries[name]; ok && num > 0 {
		return num
	}
	return 1
}

/*
SignReq default request builder.
{key} placeholders in the path are filled from params; the rest goes into the query
string for GET, or the body (form or json) for POST.
*/
func (e *Exchange) SignReq(api *Entry, params map[string]interface{}) *HttpReq {
	path := api.Url
	rest := make(map[string]interface{})
	for k, v := range params {
		holder := "{" + k + "}"
		if strings.Contains(path, holder) {
			path = strings.ReplaceAll(path, holder, utils.Str(v))
		} else {
			rest[k] = v
		}
	}
	if strings.Contains(path, "{") && strings.Contains(path, "}") {
		return &HttpReq{Error: errs.NewMsg(errs.CodeParamRequired, "unfilled path: %s", path)}
	}
	req := &HttpReq{Url: path, Method: api.Method, Headers: http.Header{}}
	for k, v := range api.Headers {
		req.Headers.Set(k, v)
	}
	if api.Method == MethodGet || api.Body == "" {
		if len(rest) > 0 {
			sep := "?"
			if strings.Contains(path, "?") {
				sep = "&"
			}
			req.Url = path + sep + utils.UrlEncodeMap(rest, true)
		}
		return req
	}
	if api.Body == BodyJson {
		body, err := utils.MarshalString(rest)
		if err != nil {
			req.Error = errs.New(errs.CodeInvalidRequest, err)
			return req
		}
		req.Body = body
		req.Headers.Set("Content-Type", "application/json")
	} else {
		req.Body = utils.UrlEncodeMap(rest, true)
		req.Headers.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req
}

func (e *Exchange) setReqHeaders(head *http.Header) {
	for k, v := range e.ReqHeaders {
		if head.Get(k) == "" {
			head.Set(k, v)
		}
	}
	if head.Get("User-Agent") == "" && e.UserAgent != "" {
		head.Set("User-Agent", e.UserAgent)
	}
}

/*
RequestApi
one http round trip for api. concurrency per host is limited to HostHttpConcurr
*/
func (e *Exchange) RequestApi(ctx context.Context, api *Entry, params map[string]interface{}, debug bool) *HttpRes {
	// block if concurrency is full
	sem := GetHostFlowChan(api.RawHost)
	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		return &HttpRes{Url: api.Url, Error: errs.New(errs.CodeNetFail, ctx.Err())}
	}
	defer func() {
		<-sem
	}()
	sign := e.Sign(api, params)
	if sign.Error != nil {
		return &HttpRes{Url: api.Url, Error: sign.Error}
	}
	var body io.Reader
	if sign.Body != "" {
		body = bytes.NewBufferString(sign.Body)
	}
	req, err := http.NewRequestWithContext(ctx, sign.Method, sign.Url, body)
	if err != nil {
		return &HttpRes{Url: sign.Url, Error: errs.New(errs.CodeInvalidRequest, err)}
	}
	req.Header = sign.Headers
	e.setReqHeaders(&req.Header)

	if debug || e.Config.Debug {
		log.Debug("request", zap.String(sign.Method, sign.Url), zap.String("body", sign.Body))
	}
	rsp, err := e.HttpClient.Do(req)
	if err != nil {
		return &HttpRes{Url: sign.Url, Error: errs.New(errs.CodeNetFail, err)}
	}
	defer rsp.Body.Close()
	var result = HttpRes{Url: sign.Url, Status: rsp.StatusCode, Headers: rsp.Header}
	rspData, err := io.ReadAll(rsp.Body)
	if err != nil {
		result.Error = errs.New(errs.CodeNetFail, err)
		return &result
	}
	result.Content = string(rspData)
	if debug || e.Config.Debug {
		log.Debug("rsp", zap.Int("status", result.Status), zap.String("url", sign.Url),
			zap.Int("len", len(result.Content)), zap.String("body", utils.Abbr(result.Content, 3000)))
	}
	if result.Status >= 400 {
		msg := fmt.Sprintf("%s %s: %v", e.ID, sign.Url, utils.Abbr(result.Content, 300))
		result.Error = errs.NewMsg(errs.CodeInvalidRequest, msg)
		result.Error.BizCode = result.Status
	}
	return &result
}

/*
RequestApiRetry
call endpoint, retrying up to retryNum more times on network failures and 5xx/429 replies.
other failures return immediately.
*/
func (e *Exchange) RequestApiRetry(ctx context.Context, endpoint string, params map[string]interface{}, retryNum int) *HttpRes {
	api, ok := e.Apis[endpoint]
	if !ok {
		return &HttpRes{Error: errs.NewMsg(errs.CodeApiNotSupport, "api not support: %s", endpoint)}
	}
	params = utils.SafeParams(params)
	debug := utils.PopMapVal(params, ParamDebug, false)
	wait := time.Duration(e.Config.RetryWait) * time.Millisecond
	var rsp *HttpRes
	for i := 0; i <= retryNum; i++ {
		if i > 0 && wait > 0 {
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return &HttpRes{Url: api.Url, Error: errs.New(errs.CodeNetFail, ctx.Err())}
			}
		}
		rsp = e.RequestApi(ctx, api, params, debug)
		if rsp.Error == nil || !rsp.Error.Retryable() || ctx.Err() != nil {
			return rsp
		}
		log.Ctx(ctx).Warn("request fail, retry", zap.String("url", rsp.Url), zap.Int("try", i+1),
			zap.String("err", rsp.Error.Short()))
	}
	return rsp
}

// Fetch request endpoint with the configured transient retries
func (e *Exchange) Fetch(ctx context.Context, endpoint string, params map[string]interface{}) *HttpRes {
	return e.RequestApiRetry(ctx, endpoint, params, e.Config.Retries)
}
