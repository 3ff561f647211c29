package handler

import (
	"net/http"
	"strconv"

	"Tuanke/config"
	"Tuanke/middleware"
	"Tuanke/pkg/response"
	"Tuanke/service"
	"Tuanke/types"

	"github.com/gin-gonic/gin"

	ctxutil "Tuanke/pkg/context"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(o.Config.Jwt.Secret))
	g := r.Group("/v1/order", authorize)
	g.POST("/create", ctxutil.Wrap(o.Create))
	g.POST("/batch-create", ctxutil.Wrap(o.BatchCreate))
	g.GET("/list", ctxutil.Wrap(o.List))
	g.GET("/:id", ctxutil.Wrap(o.Get))
	g.PUT("/:id", ctxutil.Wrap(o.Update))
	g.POST("/:id/advance", ctxutil.Wrap(o.Advance))
	g.POST("/:id/refund", ctxutil.Wrap(o.FullRefund))
	g.POST("/:id/partial-refund", ctxutil.Wrap(o.PartialRefund))
	g.DELETE("/:id", ctxutil.Wrap(o.Delete))
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewValidationError("id 参数错误")
	}
	return id, nil
}

func (o *Order) Create(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	detail, err := o.OrderService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (o *Order) BatchCreate(c *gin.Context) error {
	var req types.BatchCreateOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := o.OrderService.BatchCreate(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (o *Order) List(c *gin.Context) error {
	var req types.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := o.OrderService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (o *Order) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := o.OrderService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (o *Order) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	detail, err := o.OrderService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

// Advance 推进订单到状态链的下一个状态
func (o *Order) Advance(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := o.OrderService.Advance(c.Request.Context(), id)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (o *Order) FullRefund(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := o.OrderService.FullRefund(c.Request.Context(), id)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (o *Order) PartialRefund(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.PartialRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	detail, err := o.OrderService.PartialRefund(c.Request.Context(), id, req.Amount)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (o *Order) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := o.OrderService.Delete(c.Request.Context(), id); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}
