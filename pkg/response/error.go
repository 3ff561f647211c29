package response

import (
	"github.com/gin-gonic/gin"
)

// 业务错误码，对齐 HTTP 状态码语义
const (
	CodeInvalidParam = 400 // 参数校验失败
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeInvalidState = 409 // 当前状态不允许该操作
	CodeSystem       = 500
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NewValidationError(msg string) *BizError {
	return NewError(CodeInvalidParam, msg)
}

func NewInvalidStateError(msg string) *BizError {
	return NewError(CodeInvalidState, msg)
}

func NewNotFoundError(msg string) *BizError {
	return NewError(CodeNotFound, msg)
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
