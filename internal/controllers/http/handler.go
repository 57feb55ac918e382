package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"pos-service/internal/domain"
	"pos-service/internal/services"
)

type Handler struct {
	service *services.OrderService
	rdb     *redis.Client
}

func NewHandler(s *services.OrderService, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders/:id", h.GetOrder)
	r.PUT("/orders/:id", h.UpdateOrder)
	r.POST("/orders/:id/send", h.SendOrder)
	r.POST("/orders/:id/cancel", h.CancelOrder)
	r.GET("/tables/:tableId/orders", h.GetTableOrders)
}

// Every response keeps the uniform shape: {"success": true, ...} or
// {"success": false, "error": "..."} — no error escapes as anything else.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrBusinessUnitNotFound),
		errors.Is(err, domain.ErrTableNotFound):
		status = http.StatusNotFound
	case services.IsValidationError(err):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		BusinessUnitID: req.BusinessUnitID,
		TableID:        req.TableID,
		WaiterID:       req.WaiterID,
		WaiterName:     req.WaiterName,
		Items:          toItemInputs(req.Items),
		CustomerID:     req.CustomerID,
		IsWalkIn:       req.IsWalkIn,
		WalkInName:     req.WalkInName,
		CustomerCount:  req.CustomerCount,
		Notes:          req.Notes,
		IsDraft:        req.IsDraft,
	})
	if err != nil {
		fail(c, err)
		return
	}

	h.invalidateTableCache(order.TableID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, businessUnitID, ok := h.orderScope(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), businessUnitID, orderID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), services.UpdateOrderInput{
		BusinessUnitID: req.BusinessUnitID,
		OrderID:        orderID,
		WaiterID:       req.WaiterID,
		Items:          toItemInputs(req.Items),
	})
	if err != nil {
		fail(c, err)
		return
	}

	h.invalidateTableCache(order.TableID)
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) SendOrder(c *gin.Context) {
	orderID, businessUnitID, ok := h.orderScopeFromBody(c)
	if !ok {
		return
	}
	order, err := h.service.SendOrderToKitchenAndBar(c.Request.Context(), businessUnitID, orderID)
	if err != nil {
		fail(c, err)
		return
	}
	h.invalidateTableCache(order.TableID)
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, businessUnitID, ok := h.orderScopeFromBody(c)
	if !ok {
		return
	}
	order, err := h.service.CancelOrder(c.Request.Context(), businessUnitID, orderID)
	if err != nil {
		fail(c, err)
		return
	}
	h.invalidateTableCache(order.TableID)
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) GetTableOrders(c *gin.Context) {
	tableID, err := strconv.ParseUint(c.Param("tableId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid table id"})
		return
	}
	businessUnitID, err := strconv.ParseUint(c.Query("businessUnitId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "businessUnitId required"})
		return
	}

	ctx := c.Request.Context()
	cacheKey := tableOrdersCacheKey(tableID)
	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var orders []*domain.OrderView
			if json.Unmarshal([]byte(b), &orders) == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
				return
			}
		}
	}

	orders, err := h.service.GetOrdersByTable(ctx, businessUnitID, tableID)
	if err != nil {
		fail(c, err)
		return
	}
	if h.rdb != nil {
		if data, err := json.Marshal(orders); err == nil {
			h.rdb.Set(ctx, cacheKey, data, 10*time.Second)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *Handler) orderScope(c *gin.Context) (orderID, businessUnitID uint64, ok bool) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return 0, 0, false
	}
	businessUnitID, err = strconv.ParseUint(c.Query("businessUnitId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "businessUnitId required"})
		return 0, 0, false
	}
	return orderID, businessUnitID, true
}

func (h *Handler) orderScopeFromBody(c *gin.Context) (orderID, businessUnitID uint64, ok bool) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return 0, 0, false
	}
	var req OrderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return 0, 0, false
	}
	return orderID, req.BusinessUnitID, true
}

func (h *Handler) invalidateTableCache(tableID uint64) {
	if h.rdb != nil {
		h.rdb.Del(context.Background(), tableOrdersCacheKey(tableID))
	}
}

func tableOrdersCacheKey(tableID uint64) string {
	return "orders:table:" + strconv.FormatUint(tableID, 10)
}

func toItemInputs(reqs []OrderItemRequest) []services.OrderItemInput {
	items := make([]services.OrderItemInput, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, services.OrderItemInput{
			MenuItemID: r.MenuItemID,
			Quantity:   r.Quantity,
			Notes:      r.Notes,
		})
	}
	return items
}
