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

type Customer struct {
	Config          *config.Config
	CustomerService service.ICustomerService
}

func (h *Customer) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/customer", authorize)
	g.POST("/create", ctxutil.Wrap(h.Create))
	g.GET("/list", ctxutil.Wrap(h.List))
	g.PUT("/:id", ctxutil.Wrap(h.Update))
	g.DELETE("/:id", ctxutil.Wrap(h.Delete))

	g.POST("/address/create", ctxutil.Wrap(h.CreateAddress))
	g.GET("/address/list", ctxutil.Wrap(h.ListAddresses))
}

func (h *Customer) Create(c *gin.Context) error {
	var req types.CustomerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	item, err := h.CustomerService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

func (h *Customer) List(c *gin.Context) error {
	items, err := h.CustomerService.List(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

func (h *Customer) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.CustomerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.CustomerService.Update(c.Request.Context(), id, &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (h *Customer) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.CustomerService.Delete(c.Request.Context(), id); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (h *Customer) CreateAddress(c *gin.Context) error {
	var req types.CustomerAddressPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.CustomerService.CreateAddress(c.Request.Context(), &req); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (h *Customer) ListAddresses(c *gin.Context) error {
	items, err := h.CustomerService.ListAddresses(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}
