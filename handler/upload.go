package handler

import (
	"Tuanke/config"
	"Tuanke/middleware"
	"Tuanke/pkg/response"
	"Tuanke/service"

	"github.com/gin-gonic/gin"

	ctxutil "Tuanke/pkg/context"
)

type Upload struct {
	Config        *config.Config
	UploadService service.IUploadService
}

func (u *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/upload", authorize)
	g.POST("/image", ctxutil.Wrap(u.Image))
}

func (u *Upload) Image(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewValidationError("缺少图片文件")
	}

	resp, err := u.UploadService.SaveImage(c.Request.Context(), header)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
