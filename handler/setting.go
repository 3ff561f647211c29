package handler

import (
	"net/http"

	"Tuanke/config"
	"Tuanke/middleware"
	"Tuanke/pkg/log"
	"Tuanke/pkg/response"
	"Tuanke/service"
	"Tuanke/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ctxutil "Tuanke/pkg/context"
)

type Setting struct {
	Config         *config.Config
	SettingService service.ISettingService
}

func (s *Setting) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	g := r.Group("/v1/setting", authorize)
	g.GET("/list", ctxutil.Wrap(s.List))
	g.POST("/set", ctxutil.Wrap(s.Set))
}

func (s *Setting) List(c *gin.Context) error {
	items, err := s.SettingService.List(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

func (s *Setting) Set(c *gin.Context) error {
	var req types.SettingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := s.SettingService.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		return err
	}

	adminID, _ := ctxutil.GetAdminID(c)
	log.L.Info("global setting updated",
		zap.String("key", req.Key),
		zap.Int64("admin_id", adminID),
	)

	response.Success(c, nil)
	return nil
}
