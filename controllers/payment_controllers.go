package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/services"
	"github.com/savorybites/restaurant-backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// GetAllTransactions
func (pc *PaymentController) GetAllTransactions(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of payment transactions", pc.Payments.Transactions())
}
