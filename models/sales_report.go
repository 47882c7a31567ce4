package models

// SalesReportRow aggregates all orders of one menu item. Revenue is priced at
// report time, there is no price snapshot on the order.
type SalesReportRow struct {
	MenuItemID    uint    `json:"item_id"`
	Name          string  `json:"name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}
