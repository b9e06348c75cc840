package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/config"
	"github.com/savorybites/restaurant-backend/models"
	"github.com/savorybites/restaurant-backend/utils"
)

type ConfigController struct {
	Cfg *config.Config
}

func NewConfigController(cfg *config.Config) *ConfigController {
	return &ConfigController{Cfg: cfg}
}

// GetConfig
func (cc *ConfigController) GetConfig(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Restaurant configuration", gin.H{
		"restaurant_name":    cc.Cfg.RestaurantName(),
		"address":            cc.Cfg.Address(),
		"tax_rate":           cc.Cfg.TaxRate(),
		"max_orders_per_day": cc.Cfg.MaxOrdersPerDay(),
	})
}

// UpdateTaxRate changes the rate applied to every total computed from now
// on; already computed totals keep their cached value.
func (cc *ConfigController) UpdateTaxRate(c *gin.Context) {
	type reqBody struct {
		TaxRate *float64 `json:"tax_rate" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("tax_rate is required"))
		return
	}

	if err := cc.Cfg.SetTaxRate(*body.TaxRate); err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tax rate updated", gin.H{
		"tax_rate": cc.Cfg.TaxRate(),
	})
}
