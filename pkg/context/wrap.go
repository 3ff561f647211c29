package context

import (
	"Tuanke/pkg/log"
	"Tuanke/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxAdminID = "admin_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			// 系统错误：详细信息只进日志，客户端拿到统一文案
			log.L.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: response.CodeSystem,
				Msg:  "系统繁忙，请稍后再试",
			})
		}
	}
}

func GetAdminID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxAdminID)
	if !ok {
		return 0, errors.New("admin_id 不存在")
	}

	id, ok := v.(int64)
	if !ok {
		return 0, errors.New("admin_id 类型错误")
	}

	return id, nil
}
