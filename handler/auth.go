package handler

import (
	"net/http"

	"Tuanke/pkg/response"
	"Tuanke/service"
	"Tuanke/types"

	"github.com/gin-gonic/gin"

	ctxutil "Tuanke/pkg/context"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/login", ctxutil.Wrap(a.Login))
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
