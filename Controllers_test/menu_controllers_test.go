package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-system/models"
)

func TestGetAllMenu(t *testing.T) {
	router, _ := setupRestaurantRouter(t)

	w := doRequest(t, router, http.MethodGet, "/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	env := decode(t, w, &items)
	assert.Equal(t, "List of menu items", env.Message)
	require.Len(t, items, 3)
	assert.Equal(t, "Pizza", items[0].Name)
	assert.InDelta(t, 250.0, items[0].Price, 0.001)
	assert.Equal(t, 20, items[0].Stock)
}

func TestGetInStockMenu(t *testing.T) {
	router, db := setupRestaurantRouter(t)
	require.NoError(t, db.Model(&models.MenuItem{}).Where("name = ?", "Burger").Update("stock", 0).Error)

	w := doRequest(t, router, http.MethodGet, "/menu/in-stock", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	decode(t, w, &items)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, "Burger", item.Name)
		assert.Positive(t, item.Stock)
	}
}
