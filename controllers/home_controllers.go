package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

type HomeController struct {
	Service *services.RestaurantService
}

func NewHomeController(svc *services.RestaurantService) *HomeController {
	return &HomeController{Service: svc}
}

// Overview -> all tables and menu items with counts
func (hc *HomeController) Overview(c *gin.Context) {
	overview, err := hc.Service.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant overview", overview)
}
