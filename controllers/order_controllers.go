package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

type OrderController struct {
	Service *services.RestaurantService
}

func NewOrderController(svc *services.RestaurantService) *OrderController {
	return &OrderController{Service: svc}
}

// PlaceOrder -> order an item for a reserved table
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		TableID  uint `json:"table_id" binding:"required"`
		ItemID   uint `json:"item_id" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.PlaceOrder(c.Request.Context(), req.TableID, req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetAllOrders -> order log, ?table_id narrows it to one table
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	tableID, err := parseID(c.Query("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.Service.ListOrders(c.Request.Context(), tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}
