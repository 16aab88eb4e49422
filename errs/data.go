package errs

const (
	CodeNetFail = -1*iota - 1
	CodeNotSupport
	CodeInvalidRequest
	CodeNotImplement
	CodeUnsupportMarket
	CodeApiNotSupport
	CodeInvalidResponse
	CodeUnmarshalFail
	CodeParamRequired
	CodeParamInvalid
	CodeBadExgName
	CodeUnknownDay
	CodeIOReadFail
	CodeIOWriteFail
	CodeRunTime
)

var (
	ApiNotSupport   = NewMsg(CodeApiNotSupport, "api not support")
	UnsupportMarket = NewMsg(CodeUnsupportMarket, "unsupported market type")
	NotImplement    = NewMsg(CodeNotImplement, "method not implement")
)

var codeNames = map[int]string{
	CodeNetFail:         "NetFail",
	CodeNotSupport:      "NotSupport",
	CodeInvalidRequest:  "InvalidRequest",
	CodeNotImplement:    "NotImplement",
	CodeUnsupportMarket: "UnsupportMarket",
	CodeApiNotSupport:   "ApiNotSupport",
	CodeInvalidResponse: "InvalidResponse",
	CodeUnmarshalFail:   "UnmarshalFail",
	CodeParamRequired:   "ParamRequired",
	CodeParamInvalid:    "ParamInvalid",
	CodeBadExgName:      "BadExgName",
	CodeUnknownDay:      "UnknownDay",
	CodeIOReadFail:      "IOReadFail",
	CodeIOWriteFail:     "IOWriteFail",
	CodeRunTime:         "RunTime",
}
