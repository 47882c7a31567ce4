package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

type TableController struct {
	Service *services.RestaurantService
}

func NewTableController(svc *services.RestaurantService) *TableController {
	return &TableController{Service: svc}
}

// GetAllTables -> every table, optionally filtered with ?status=available|reserved
func (tc *TableController) GetAllTables(c *gin.Context) {
	var (
		tables []models.Table
		err    error
	)
	switch c.Query("status") {
	case "":
		tables, err = tc.Service.ListTables(c.Request.Context())
	case "available":
		tables, err = tc.Service.ListAvailableTables(c.Request.Context())
	case "reserved":
		tables, err = tc.Service.ListReservedTables(c.Request.Context())
	default:
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) GetAvailableTables(c *gin.Context) {
	tables, err := tc.Service.ListAvailableTables(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of available tables", tables)
}

func (tc *TableController) GetReservedTables(c *gin.Context) {
	tables, err := tc.Service.ListReservedTables(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reserved tables", tables)
}

// ReserveTable -> reserve a free table for a customer
func (tc *TableController) ReserveTable(c *gin.Context) {
	var req struct {
		TableID      uint   `json:"table_id" binding:"required"`
		CustomerName string `json:"customer_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := tc.Service.ReserveTable(c.Request.Context(), req.TableID, req.CustomerName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table reserved", reservation)
}

// ReleaseTable -> free a reserved table so it can be booked again
func (tc *TableController) ReleaseTable(c *gin.Context) {
	tableID, err := parseID(c.Param("table_id"))
	if err != nil || tableID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidTableID)
		return
	}

	table, err := tc.Service.ReleaseTable(c.Request.Context(), tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table released", table)
}

// GetReservations -> reservation log, ?table_id narrows it to one table
func (tc *TableController) GetReservations(c *gin.Context) {
	tableID, err := parseID(c.Query("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservations, err := tc.Service.ListReservations(c.Request.Context(), tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}
