package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorybites/restaurant-backend/utils"
)

type OfferController struct{}

func NewOfferController() *OfferController {
	return &OfferController{}
}

// ClaimOffer acknowledges an offer claim. The offer id comes from the raw
// query string; a missing id still claims, with an empty id, as the legacy
// frontend expects.
func (oc *OfferController) ClaimOffer(c *gin.Context) {
	offerID := utils.ParsePairs(c.Request.URL.RawQuery)["offerId"]
	c.String(http.StatusOK, "Offer %s claimed!", offerID)
}
