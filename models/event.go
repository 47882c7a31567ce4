package models

import "time"

// Event types pushed to the live board and to the message broker.
const (
	EventTableReserved = "table_reserved"
	EventTableReleased = "table_released"
	EventOrderPlaced   = "order_placed"
)

type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// TableReservedData is the payload of EventTableReserved.
type TableReservedData struct {
	Reservation Reservation `json:"reservation"`
	TableNumber int         `json:"table_number"`
}

// OrderPlacedData is the payload of EventOrderPlaced.
type OrderPlacedData struct {
	Order          Order  `json:"order"`
	ItemName       string `json:"item_name"`
	RemainingStock int    `json:"remaining_stock"`
}
