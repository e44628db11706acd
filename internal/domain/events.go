package domain

// OrderCreatedEvent is published to the broker after an order commits, once
// per derived station.
type OrderCreatedEvent struct {
	OrderID     int64    `json:"order_id"`
	TableNumber string   `json:"table_number"`
	TotalPrice  float64  `json:"total_price"`
	Printers    []string `json:"printers"`
}
