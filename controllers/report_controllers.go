package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

type ReportController struct {
	Service *services.RestaurantService
}

func NewReportController(svc *services.RestaurantService) *ReportController {
	return &ReportController{Service: svc}
}

// SalesReport -> quantity and revenue per item, JSON by default or ?format=csv
func (rc *ReportController) SalesReport(c *gin.Context) {
	rows, err := rc.Service.SalesReport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		utils.RespondJSON(c, http.StatusOK, "Sales report", rows)
	case "csv":
		rc.writeCSV(c, rows)
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unsupported format %q", c.Query("format")))
	}
}

func (rc *ReportController) writeCSV(c *gin.Context, rows []models.SalesReportRow) {
	filename := fmt.Sprintf("sales_report_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"item_id", "name", "total_quantity", "total_revenue"})
	for _, row := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(row.MenuItemID), 10),
			row.Name,
			strconv.FormatInt(row.TotalQuantity, 10),
			strconv.FormatFloat(row.TotalRevenue, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		utils.ErrorLogger.WithError(err).Error("failed to write sales report csv")
	}
}
