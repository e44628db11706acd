package domain

type CreateOrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	TableNumber string            `json:"table_number"`
	OrderItems  []CreateOrderItem `json:"order_items"`
}

type CreateOrderResponse struct {
	OrderID    int64    `json:"order_id"`
	TotalPrice float64  `json:"total_price"`
	Printers   []string `json:"printers"`
}

type BillDetail struct {
	ProductName string  `json:"product_name"`
	Variant     string  `json:"variant"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type BillResponse struct {
	OrderID     int64        `json:"order_id"`
	TableNumber string       `json:"table_number"`
	TotalPrice  float64      `json:"total_price"`
	BillDetails []BillDetail `json:"bill_details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
