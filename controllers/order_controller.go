package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"canteen-backend/pkg/receipt"
	"canteen-backend/pkg/resp"
	"canteen-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrIllegalTransition):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(&req)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?status=&limit=
func (oc *OrderController) List(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := oc.Service.List(status, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:orderId
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Service.Get(c.Param("orderId"))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:orderId/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.UpdateStatus(c.Param("orderId"), req.Status)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:orderId/receipt
func (oc *OrderController) Receipt(c *gin.Context) {
	order, err := oc.Service.Get(c.Param("orderId"))
	if err != nil {
		writeOrderError(c, err)
		return
	}

	pdf, err := receipt.Render(order)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "order-"+order.Code+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
