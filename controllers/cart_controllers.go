package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-storefront/models"
	"github.com/yeremiapane/restaurant-storefront/session"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

// Catalog is the read-only slice of the upstream client the storefront
// uses to resolve add-time snapshots and to proxy menu browsing.
type Catalog interface {
	ListMenuItems(ctx context.Context, categoryID string) ([]models.MenuItem, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type CartController struct {
	catalog Catalog
}

func NewCartController(catalog Catalog) *CartController {
	return &CartController{catalog: catalog}
}

// currentSession pulls the session placed on the context by the session
// middleware.
func currentSession(c *gin.Context) *session.Session {
	return c.MustGet("session").(*session.Session)
}

type cartView struct {
	Lines        []models.CartLine `json:"lines"`
	Total        float64           `json:"total"`
	TotalDisplay string            `json:"total_display"`
	Count        int               `json:"count"`
}

func viewOf(sess *session.Session) cartView {
	total := sess.Cart.Total()
	return cartView{
		Lines:        sess.Cart.Lines(),
		Total:        total,
		TotalDisplay: utils.FormatCurrency(total),
		Count:        sess.Cart.Count(),
	}
}

// GetCart -> the session's cart lines plus derived total and count.
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", viewOf(currentSession(c)))
}

// AddItem -> put a menu item in the cart. The item is resolved against the
// upstream catalog here, so price and labels are snapshotted at add time.
func (cc *CartController) AddItem(c *gin.Context) {
	sess := currentSession(c)

	type reqBody struct {
		ItemID   string `json:"item_id" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	if body.Quantity < 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("quantity must be positive"))
		return
	}

	items, err := cc.catalog.ListMenuItems(c.Request.Context(), "")
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, fmt.Errorf("menu is unavailable right now"))
		return
	}

	for _, item := range items {
		if item.ID != body.ItemID {
			continue
		}
		if !item.Available {
			utils.RespondError(c, http.StatusConflict, fmt.Errorf("%s is not available", item.Name))
			return
		}
		sess.Cart.AddItem(item, body.Quantity)
		utils.RespondJSON(c, http.StatusOK, "Item added", viewOf(sess))
		return
	}

	utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu item %s not found", body.ItemID))
}

// UpdateItem -> set the quantity of a line; zero removes it.
func (cc *CartController) UpdateItem(c *gin.Context) {
	sess := currentSession(c)
	itemID := c.Param("item_id")

	type reqBody struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess.Cart.UpdateQuantity(itemID, *body.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", viewOf(sess))
}

// RemoveItem -> drop a line; removing an absent line is not an error.
func (cc *CartController) RemoveItem(c *gin.Context) {
	sess := currentSession(c)
	sess.Cart.RemoveItem(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed", viewOf(sess))
}

// ClearCart -> empty the cart unconditionally.
func (cc *CartController) ClearCart(c *gin.Context) {
	sess := currentSession(c)
	sess.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", viewOf(sess))
}
