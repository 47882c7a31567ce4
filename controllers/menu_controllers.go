package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

type MenuController struct {
	Service *services.RestaurantService
}

func NewMenuController(svc *services.RestaurantService) *MenuController {
	return &MenuController{Service: svc}
}

// GetAllMenu
func (mc *MenuController) GetAllMenu(c *gin.Context) {
	items, err := mc.Service.ListMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetInStockMenu -> items that can still be ordered
func (mc *MenuController) GetInStockMenu(c *gin.Context) {
	items, err := mc.Service.ListInStockMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items in stock", items)
}
