package cndata

import (
	"net/http"
	"net/url"

	"github.com/banbox/cndata/errs"
)

type FuncSign = func(api *Entry, params map[string]interface{}) *HttpReq

type Exchange struct {
	*ExgInfo
	Hosts   *ExgHosts
	Apis    map[string]*Entry         // all api endpoints by name
	Has     map[string]map[string]int // market -> ApiReference/ApiEod -> HasApi*
	Options map[string]interface{}    // options passed by user
	Config  *Config

	UserAgent  string
	ReqHeaders map[string]string // http headers sent on every request
	Retries    map[string]int    // attempts for batch sub-fetches, by name
	HttpClient *http.Client
	Proxy      func(*http.Request) (*url.URL, error)

	Calendar Calendar      // trading days, required by sources deriving the previous session
	Products *ProductTable // static Unit/TickSize per product

	// for calling sub struct func in parent struct
	Sign FuncSign
}

type ExgInfo struct {
	ID        string // cffex
	Name      string // China Financial Futures Exchange
	Countries []string
}

type ExgHosts struct {
	Prod map[string]string
	Www  string
	Doc  []string
}

type Entry struct {
	Path    string // may hold {key} placeholders filled from params
	Host    string // key of ExgHosts.Prod
	Method  string
	Body    string            // BodyForm / BodyJson for POST
	Headers map[string]string // extra headers of this endpoint

	Url     string
	RawHost string
}

type HttpReq struct {
	Url     string
	Method  string
	Headers http.Header
	Body    string
	Error   *errs.Error
}

type HttpRes struct {
	Url     string      `json:"url"`
	Status  int         `json:"status"`
	Headers http.Header `json:"headers"`
	Content string      `json:"content"`
	Error   *errs.Error `json:"-"`
}

/*
Calendar the subset of the trading calendar oracle used by source adapters
*/
type Calendar interface {
	Pre(day string) (string, *errs.Error)
	Next(day string) (string, *errs.Error)
}
