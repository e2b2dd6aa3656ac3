package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-storefront/checkout"
	"github.com/yeremiapane/restaurant-storefront/client"
	"github.com/yeremiapane/restaurant-storefront/models"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

type CheckoutController struct {
	submitter *checkout.Submitter
}

func NewCheckoutController(submitter *checkout.Submitter) *CheckoutController {
	return &CheckoutController{submitter: submitter}
}

// Checkout -> submit the session cart as an order. The cart survives every
// failure; only a confirmed creation clears it.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	sess := currentSession(c)

	var draft models.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orderNumber, err := cc.submitter.Submit(c.Request.Context(), sess, draft)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"order_number": orderNumber,
	})
}

func respondCheckoutError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	var apiErr *client.APIError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, checkout.ErrSubmitInFlight):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.As(err, &vErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &apiErr):
		// Upstream rejection: pass the message through verbatim.
		status := apiErr.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		utils.RespondError(c, status, apiErr)
	default:
		utils.RespondError(c, http.StatusBadGateway,
			errors.New("could not reach the order service, please try again"))
	}
}
