package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/services"
	"github.com/savorybites/restaurant-backend/utils"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GetCart dumps the shared cart as text.
func (cc *CartController) GetCart(c *gin.Context) {
	c.String(http.StatusOK, "Cart: %s", cc.Cart.String())
}

// UpdateCart mutates the shared cart. action "add" increments the item
// counter; "remove" drops the item entirely. Anything else is a no-op.
func (cc *CartController) UpdateCart(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	fields := utils.ParsePairs(string(body))
	itemID := fields["itemId"]
	action := fields["action"]

	if itemID != "" {
		switch action {
		case "add":
			cc.Cart.Add(itemID)
		case "remove":
			cc.Cart.Remove(itemID)
		}
	}

	c.String(http.StatusOK, "Cart updated: %s", cc.Cart.String())
}
