package errors

import (
	"daypulse/pkg/errors/ecode"
	"fmt"
)

// 带错误码的error，handler层统一通过response.JSON解码

type CodedError struct {
	Code    int
	Message string
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New 创建一个带码错误，message为空时使用错误码默认描述
func New(code int, message string) error {
	if message == "" {
		message = ecode.Message(code)
	}
	return &CodedError{Code: code, Message: message}
}

func Newf(code int, format string, args ...interface{}) error {
	return &CodedError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// DecodeErr 从error中解出错误码和描述
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Message(ecode.Success)
	}
	if ce, ok := err.(*CodedError); ok {
		return ce.Code, ce.Message
	}
	return ecode.InternalErr, err.Error()
}
