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

type Supplier struct {
	Config          *config.Config
	SupplierService service.ISupplierService
}

func (s *Supplier) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	g := r.Group("/v1/supplier", authorize)
	g.POST("/create", ctxutil.Wrap(s.Create))
	g.GET("/list", ctxutil.Wrap(s.List))
	g.GET("/:id", ctxutil.Wrap(s.Get))
	g.PUT("/:id", ctxutil.Wrap(s.Update))
	g.DELETE("/:id", ctxutil.Wrap(s.Delete))
}

func (s *Supplier) Create(c *gin.Context) error {
	var req types.SupplierPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	item, err := s.SupplierService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

func (s *Supplier) List(c *gin.Context) error {
	var req types.SupplierListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := s.SupplierService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (s *Supplier) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := s.SupplierService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

func (s *Supplier) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.SupplierPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := s.SupplierService.Update(c.Request.Context(), id, &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (s *Supplier) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.SupplierService.Delete(c.Request.Context(), id); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}
