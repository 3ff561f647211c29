package handler

import (
	"Tuanke/config"
	"Tuanke/middleware"
	"Tuanke/pkg/response"
	"Tuanke/service"

	"github.com/gin-gonic/gin"

	ctxutil "Tuanke/pkg/context"
)

type Maintenance struct {
	Config       *config.Config
	DedupService service.IDedupService
}

func (m *Maintenance) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(m.Config.Jwt.Secret))
	g := r.Group("/v1/maintenance", authorize)
	g.POST("/image-dedup", ctxutil.Wrap(m.ImageDedup))
}

// ImageDedup 同步执行图片去重任务并返回报告
func (m *Maintenance) ImageDedup(c *gin.Context) error {
	report, err := m.DedupService.Run(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, report)
	return nil
}
