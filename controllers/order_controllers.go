package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-storefront/client"
	"github.com/yeremiapane/restaurant-storefront/models"
	"github.com/yeremiapane/restaurant-storefront/tracker"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

// OrderReader is the slice of the upstream client used for one-shot
// status reads.
type OrderReader interface {
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
}

type OrderController struct {
	orders      OrderReader
	trackers    *tracker.Service
	watchWindow time.Duration
}

func NewOrderController(orders OrderReader, trackers *tracker.Service, watchWindow time.Duration) *OrderController {
	return &OrderController{
		orders:      orders,
		trackers:    trackers,
		watchWindow: watchWindow,
	}
}

type orderView struct {
	Order    *models.Order `json:"order"`
	Stage    int           `json:"stage"`
	Terminal bool          `json:"terminal"`
}

func orderViewOf(order *models.Order) orderView {
	return orderView{
		Order:    order,
		Stage:    order.Status.Stage(),
		Terminal: order.Status.Terminal(),
	}
}

// GetOrder -> one fetch of the current snapshot plus the derived progress
// stage. A missing order is a 404, never a generic failure.
func (oc *OrderController) GetOrder(c *gin.Context) {
	orderNumber := c.Param("order_number")

	order, err := oc.orders.GetOrder(c.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, client.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("order %s not found", orderNumber))
			return
		}
		utils.RespondError(c, http.StatusBadGateway,
			errors.New("could not fetch order status, please try again"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status", orderViewOf(order))
}

// WatchOrder -> long poll for a status change. The handler runs a tracker
// for the lifetime of the request and answers as soon as the status moves
// past since_status, or with the latest snapshot when the window closes.
func (oc *OrderController) WatchOrder(c *gin.Context) {
	orderNumber := c.Param("order_number")
	since := models.OrderStatus(c.Query("since_status"))

	tr := oc.trackers.Track(orderNumber)
	defer tr.Stop()

	window := time.NewTimer(oc.watchWindow)
	defer window.Stop()

	var last *models.Order
	for {
		select {
		case u, ok := <-tr.Updates():
			if !ok {
				utils.RespondError(c, http.StatusBadGateway,
					errors.New("order tracking ended unexpectedly"))
				return
			}
			if u.NotFound {
				utils.RespondError(c, http.StatusNotFound, fmt.Errorf("order %s not found", orderNumber))
				return
			}
			if u.Err != nil {
				// Transient upstream error: keep the long poll open.
				continue
			}
			last = u.Order
			if since == "" || u.Order.Status != since {
				utils.RespondJSON(c, http.StatusOK, "Order status", orderViewOf(last))
				return
			}
		case <-window.C:
			if last == nil {
				utils.RespondError(c, http.StatusBadGateway,
					errors.New("could not fetch order status, please try again"))
				return
			}
			utils.RespondJSON(c, http.StatusOK, "Order status unchanged", orderViewOf(last))
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
