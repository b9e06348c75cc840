package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/services"
	"github.com/savorybites/restaurant-backend/utils"
)

type MenuController struct {
	Catalog *services.MenuCatalog
}

func NewMenuController(catalog *services.MenuCatalog) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Catalog.Items())
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	itemID := c.Param("item_id")
	item, ok := mc.Catalog.Get(itemID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}
