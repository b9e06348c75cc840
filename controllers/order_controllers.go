package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/config"
	"github.com/savorybites/restaurant-backend/models"
	"github.com/savorybites/restaurant-backend/services"
	"github.com/savorybites/restaurant-backend/utils"
)

// The legacy frontend does not send a phone number; orders carry this
// placeholder.
const defaultPhone = "1234567890"

type OrderController struct {
	Catalog *services.MenuCatalog
	Orders  *services.OrderManager
	Cfg     *config.Config

	// Shared counter behind U<n>/ORD<n> ids. Process-lifetime, resets on
	// restart.
	counter atomic.Int64
}

func NewOrderController(catalog *services.MenuCatalog, orders *services.OrderManager, cfg *config.Config) *OrderController {
	return &OrderController{Catalog: catalog, Orders: orders, Cfg: cfg}
}

// CreateOrder is the legacy text endpoint: body fields itemId, userName,
// userEmail as raw key=value pairs. Business-rule failures render as
// "Error: <message>" with HTTP 200; that contract is load-bearing for the
// frontend.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	fields := utils.ParsePairs(string(body))
	itemID := fields["itemId"]
	userName := fields["userName"]
	userEmail := fields["userEmail"]

	if itemID == "" || userName == "" || userEmail == "" {
		c.String(http.StatusOK, "Error: Missing required fields")
		return
	}

	n := oc.counter.Add(1)
	customer, err := models.NewUser(fmt.Sprintf("U%d", n), userName, userEmail, defaultPhone)
	if err != nil {
		c.String(http.StatusOK, "Error: %s", err.Error())
		return
	}

	item, ok := oc.Catalog.Get(itemID)
	if !ok {
		c.String(http.StatusOK, "Error: Item not found")
		return
	}

	order := models.NewOrder(fmt.Sprintf("ORD%d", n), customer, oc.Cfg)
	if err := order.AddItem(item); err != nil {
		c.String(http.StatusOK, "Error: %s", err.Error())
		return
	}

	if err := oc.Orders.AddOrder(order); err != nil {
		utils.ErrorLogger.Printf("observer failed for order %s: %v", order.ID(), err)
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	c.String(http.StatusOK, "Order created! %s - Total: $%.2f", order.ID(), order.TotalAmount())
}

// GetAllOrders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Orders.Orders())
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")
	order, ok := oc.Orders.Get(orderID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus drives the observer pipeline: every registered
// listener hears the new status, even when it equals the old one.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, ok := oc.Orders.Get(orderID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := oc.Orders.UpdateStatus(orderID, body.Status); err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("observer failed for order %s: %v", orderID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
