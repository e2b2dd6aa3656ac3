package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-storefront/utils"
)

type MenuController struct {
	catalog Catalog
}

func NewMenuController(catalog Catalog) *MenuController {
	return &MenuController{catalog: catalog}
}

// GetMenuItems -> catalog items from the upstream, optionally filtered by
// category_id.
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	items, err := mc.catalog.ListMenuItems(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("menu is unavailable right now"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

// GetCategories -> catalog categories from the upstream.
func (mc *MenuController) GetCategories(c *gin.Context) {
	categories, err := mc.catalog.ListCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("menu is unavailable right now"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Categories", categories)
}
