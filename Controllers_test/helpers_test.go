package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-system/controllers"
	"github.com/yeremiapane/restaurant-system/database/dbtest"
	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupRestaurantRouter registers the controllers on a seeded in-memory store.
func setupRestaurantRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	utils.SilenceLogger()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t, true)
	svc := services.NewRestaurantService(db, nil, nil)

	router := gin.New()
	homeCtrl := controllers.NewHomeController(svc)
	tableCtrl := controllers.NewTableController(svc)
	menuCtrl := controllers.NewMenuController(svc)
	orderCtrl := controllers.NewOrderController(svc)
	reportCtrl := controllers.NewReportController(svc)

	router.GET("/", homeCtrl.Overview)
	router.GET("/tables", tableCtrl.GetAllTables)
	router.GET("/tables/available", tableCtrl.GetAvailableTables)
	router.GET("/tables/reserved", tableCtrl.GetReservedTables)
	router.POST("/tables/:table_id/release", tableCtrl.ReleaseTable)
	router.POST("/reservations", tableCtrl.ReserveTable)
	router.GET("/reservations", tableCtrl.GetReservations)
	router.GET("/menu", menuCtrl.GetAllMenu)
	router.GET("/menu/in-stock", menuCtrl.GetInStockMenu)
	router.POST("/orders", orderCtrl.PlaceOrder)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/reports/sales", reportCtrl.SalesReport)
	return router, db
}

func doRequest(t *testing.T, router http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode reads the envelope and unmarshals its data into out (when non-nil).
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func seededTable(t *testing.T, db *gorm.DB, number int) models.Table {
	t.Helper()
	var table models.Table
	require.NoError(t, db.Where("number = ?", number).First(&table).Error)
	return table
}

func seededItem(t *testing.T, db *gorm.DB, name string) models.MenuItem {
	t.Helper()
	var item models.MenuItem
	require.NoError(t, db.Where("name = ?", name).First(&item).Error)
	return item
}

func reserve(t *testing.T, router http.Handler, tableID uint, name string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, router, http.MethodPost, "/reservations", map[string]interface{}{
		"table_id":      tableID,
		"customer_name": name,
	})
}
