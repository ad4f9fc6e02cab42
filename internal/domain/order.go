package domain

import "time"

// Order status pipeline.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the order status enum.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ScooterID string  `json:"scooter_id" dynamodbav:"scooter_id" validate:"required"`
	Quantity  int     `json:"quantity" dynamodbav:"quantity" validate:"required,gt=0"`
	Color     string  `json:"color,omitempty" dynamodbav:"color"`
	Price     float64 `json:"price" dynamodbav:"price" validate:"required,gt=0"`
}

type ShippingAddress struct {
	Street  string `json:"street,omitempty" dynamodbav:"street"`
	City    string `json:"city,omitempty" dynamodbav:"city"`
	State   string `json:"state,omitempty" dynamodbav:"state"`
	ZipCode string `json:"zip_code,omitempty" dynamodbav:"zip_code"`
	Country string `json:"country,omitempty" dynamodbav:"country"`
}

type Order struct {
	OrderID         string          `json:"id" dynamodbav:"order_id"`
	UserID          string          `json:"user_id" dynamodbav:"user_id"`
	Items           []OrderItem     `json:"items" dynamodbav:"items"`
	TotalAmount     float64         `json:"total_amount" dynamodbav:"total_amount"`
	Status          string          `json:"status" dynamodbav:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address" dynamodbav:"shipping_address"`
	PaymentMethod   string          `json:"payment_method,omitempty" dynamodbav:"payment_method"`
	CreatedAt       time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateOrderRequest struct {
	Items           []OrderItem     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
}
