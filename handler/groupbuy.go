package handler

import (
	"net/http"

	"Tuanke/config"
	"Tuanke/middleware"
	"Tuanke/pkg/response"
	"Tuanke/service"
	"Tuanke/types"

	"github.com/gin-gonic/gin"

	ctxutil "Tuanke/pkg/context"
)

type GroupBuy struct {
	Config          *config.Config
	GroupBuyService service.IGroupBuyService
}

func (g *GroupBuy) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(g.Config.Jwt.Secret))
	grp := r.Group("/v1/group-buy", authorize)
	grp.POST("/create", ctxutil.Wrap(g.Create))
	grp.GET("/list", ctxutil.Wrap(g.List))
	grp.GET("/:id", ctxutil.Wrap(g.Get))
	grp.PUT("/:id", ctxutil.Wrap(g.Update))
	grp.DELETE("/:id", ctxutil.Wrap(g.Delete))
}

func (g *GroupBuy) Create(c *gin.Context) error {
	var req types.CreateGroupBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	item, err := g.GroupBuyService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

func (g *GroupBuy) List(c *gin.Context) error {
	var req types.GroupBuyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := g.GroupBuyService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (g *GroupBuy) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := g.GroupBuyService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

func (g *GroupBuy) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.UpdateGroupBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := g.GroupBuyService.Update(c.Request.Context(), id, &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (g *GroupBuy) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := g.GroupBuyService.Delete(c.Request.Context(), id); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}
