package Controllers_test

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-system/models"
)

func placeOrder(t *testing.T, router http.Handler, tableID, itemID uint, qty int) int {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/orders", map[string]interface{}{
		"table_id": tableID,
		"item_id":  itemID,
		"quantity": qty,
	})
	return w.Code
}

func TestPlaceOrder(t *testing.T) {
	router, db := setupRestaurantRouter(t)
	table := seededTable(t, db, 1)
	pizza := seededItem(t, db, "Pizza")
	require.Equal(t, http.StatusCreated, reserve(t, router, table.ID, "Alice").Code)

	w := doRequest(t, router, http.MethodPost, "/orders", map[string]interface{}{
		"table_id": table.ID,
		"item_id":  pizza.ID,
		"quantity": 5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	env := decode(t, w, &order)
	assert.Equal(t, "Order placed", env.Message)
	assert.Equal(t, pizza.ID, order.MenuItemID)
	assert.Equal(t, 5, order.Quantity)
	assert.Equal(t, 15, seededItem(t, db, "Pizza").Stock)
}

func TestPlaceOrder_StatusMapping(t *testing.T) {
	router, db := setupRestaurantRouter(t)
	reserved := seededTable(t, db, 1)
	free := seededTable(t, db, 2)
	pizza := seededItem(t, db, "Pizza")
	require.Equal(t, http.StatusCreated, reserve(t, router, reserved.ID, "Alice").Code)

	cases := []struct {
		name    string
		tableID uint
		itemID  uint
		qty     int
		code    int
	}{
		{"unreserved table", free.ID, pizza.ID, 1, http.StatusConflict},
		{"unknown table", 999, pizza.ID, 1, http.StatusNotFound},
		{"unknown item", reserved.ID, 999, 1, http.StatusNotFound},
		{"zero quantity", reserved.ID, pizza.ID, 0, http.StatusBadRequest},
		{"negative quantity", reserved.ID, pizza.ID, -2, http.StatusBadRequest},
		{"insufficient stock", reserved.ID, pizza.ID, 100, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, placeOrder(t, router, tc.tableID, tc.itemID, tc.qty))
		})
	}
	assert.Equal(t, 20, seededItem(t, db, "Pizza").Stock)
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	router, _ := setupRestaurantRouter(t)

	w := doRequest(t, router, http.MethodPost, "/orders", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w, nil).Status)
}

func TestGetAllOrders(t *testing.T) {
	router, db := setupRestaurantRouter(t)
	t1 := seededTable(t, db, 1)
	t2 := seededTable(t, db, 2)
	pasta := seededItem(t, db, "Pasta")
	for _, id := range []uint{t1.ID, t2.ID} {
		require.Equal(t, http.StatusCreated, reserve(t, router, id, "guest").Code)
		require.Equal(t, http.StatusCreated, placeOrder(t, router, id, pasta.ID, 1))
	}

	var orders []models.Order
	decode(t, doRequest(t, router, http.MethodGet, "/orders", nil), &orders)
	assert.Len(t, orders, 2)

	decode(t, doRequest(t, router, http.MethodGet, fmt.Sprintf("/orders?table_id=%d", t1.ID), nil), &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, t1.ID, orders[0].TableID)
}

func TestSalesReport(t *testing.T) {
	router, db := setupRestaurantRouter(t)
	table := seededTable(t, db, 1)
	pizza := seededItem(t, db, "Pizza")
	burger := seededItem(t, db, "Burger")
	require.Equal(t, http.StatusCreated, reserve(t, router, table.ID, "Alice").Code)
	require.Equal(t, http.StatusCreated, placeOrder(t, router, table.ID, pizza.ID, 5))
	require.Equal(t, http.StatusCreated, placeOrder(t, router, table.ID, burger.ID, 2))

	w := doRequest(t, router, http.MethodGet, "/reports/sales", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []models.SalesReportRow
	decode(t, w, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pizza", rows[0].Name)
	assert.Equal(t, int64(5), rows[0].TotalQuantity)
	assert.InDelta(t, 1250.0, rows[0].TotalRevenue, 0.001)
	assert.Equal(t, "Burger", rows[1].Name)
	assert.InDelta(t, 300.0, rows[1].TotalRevenue, 0.001)
}

func TestSalesReport_CSV(t *testing.T) {
	router, db := setupRestaurantRouter(t)
	table := seededTable(t, db, 1)
	pizza := seededItem(t, db, "Pizza")
	require.Equal(t, http.StatusCreated, reserve(t, router, table.ID, "Alice").Code)
	require.Equal(t, http.StatusCreated, placeOrder(t, router, table.ID, pizza.ID, 5))

	w := doRequest(t, router, http.MethodGet, "/reports/sales?format=csv", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"item_id", "name", "total_quantity", "total_revenue"}, records[0])
	assert.Equal(t, []string{fmt.Sprint(pizza.ID), "Pizza", "5", "1250.00"}, records[1])

	w = doRequest(t, router, http.MethodGet, "/reports/sales?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesReport_Empty(t *testing.T) {
	router, _ := setupRestaurantRouter(t)

	w := doRequest(t, router, http.MethodGet, "/reports/sales", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var rows []models.SalesReportRow
	decode(t, w, &rows)
	assert.Empty(t, rows)
}
