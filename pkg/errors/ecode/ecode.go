package ecode

// 错误码定义，0表示成功
const (
	Success = 0

	// 通用错误 10xxx
	InternalErr    = 10001
	InvalidParams  = 10002
	NotFound       = 10003
	RequireAuthErr = 10401

	// 行情错误 20xxx
	QuoteUnavailable  = 20001
	SeriesUnavailable = 20002

	// 交易模拟错误 21xxx
	NoQuoteCached = 21001
	NoPosition    = 21002

	// 预警错误 22xxx
	InvalidThreshold = 22001
)

var messages = map[int]string{
	Success:           "ok",
	InternalErr:       "internal error",
	InvalidParams:     "invalid params",
	NotFound:          "not found",
	RequireAuthErr:    "require auth",
	QuoteUnavailable:  "quote unavailable",
	SeriesUnavailable: "price series unavailable",
	NoQuoteCached:     "no cached quote for instrument",
	NoPosition:        "no position held",
	InvalidThreshold:  "invalid alert threshold",
}

// Message 返回错误码的默认描述
func Message(code int) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "unknown error"
}
