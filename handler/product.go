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

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (p *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/v1/product", authorize)
	g.POST("/create", ctxutil.Wrap(p.Create))
	g.GET("/list", ctxutil.Wrap(p.List))
	g.PUT("/:id", ctxutil.Wrap(p.Update))
	g.DELETE("/:id", ctxutil.Wrap(p.Delete))

	g.POST("/type/create", ctxutil.Wrap(p.CreateType))
	g.GET("/type/list", ctxutil.Wrap(p.ListTypes))
}

func (p *Product) Create(c *gin.Context) error {
	var req types.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	item, err := p.ProductService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

func (p *Product) List(c *gin.Context) error {
	items, err := p.ProductService.List(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

func (p *Product) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := p.ProductService.Update(c.Request.Context(), id, &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (p *Product) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := p.ProductService.Delete(c.Request.Context(), id); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (p *Product) CreateType(c *gin.Context) error {
	var req types.ProductTypePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := p.ProductService.CreateType(c.Request.Context(), &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (p *Product) ListTypes(c *gin.Context) error {
	items, err := p.ProductService.ListTypes(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}
