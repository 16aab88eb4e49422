package cndata

const (
	MarketFutures = "futures"
	MarketOption  = "option"
	MarketStock   = "stock"
	MarketBond    = "bond"
	MarketFund    = "fund"
	MarketIndex   = "index"
	MarketRepo    = "repo"
)

const (
	ApiReference = "reference"
	ApiEod       = "eod"
)

const (
	HasFail = 1 << iota
	HasOk
	HasEmulated
)

const (
	CallOpt = "C"
	PutOpt  = "P"

	ExecAmerican = "American"
	ExecEuropean = "European"

	DeliverPhysical = "Physical"
	DeliverCash     = "Cash"
)

const (
	MethodGet  = "GET"
	MethodPost = "POST"

	BodyForm = "form"
	BodyJson = "json"
)

const (
	OptConfigPath   = "ConfigPath"
	OptProxy        = "Proxy"
	OptUserAgent    = "UserAgent"
	OptReqHeaders   = "ReqHeaders"
	OptRetries      = "Retries"
	OptTimeout      = "Timeout"
	OptRetryWait    = "RetryWait"
	OptBatchTries   = "BatchTries"
	OptConcurrency  = "Concurrency"
	OptDumpDir      = "DumpDir"
	OptDebugApi     = "DebugApi"
	OptCalendar     = "Calendar"
	OptCalendarPath = "CalendarPath"
	OptProductsPath = "ProductsPath"
)

const (
	ParamProduct = "product"
	ParamMode    = "mode"
	ParamHistory = "history"
	ParamDebug   = "debug"
)

const (
	ModeOngoing = "ongoing"
	ModeHistory = "history"
)

// DateAll with ParamHistory: keep every day of each instrument series
const DateAll = "all"

const (
	RetryBatch = "batch"
	RetryDay   = "day_report"
)

const (
	HostHttpConcurr = 3 // concurrent requests per host
	DefBatchTries   = 3
	DefTimeoutSecs  = 30
	DefRetryWaitMS  = 1000
	DefUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"
)

var (
	DefReqHeaders = map[string]string{
		"Accept": "*/*",
	}
	DefRetries = map[string]int{
		RetryBatch: DefBatchTries,
		RetryDay:   5,
	}
	AllMarkets = []string{MarketFutures, MarketOption, MarketStock, MarketBond, MarketFund, MarketIndex, MarketRepo}
)
