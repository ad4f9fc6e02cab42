package domain

import "time"

// Booking status pipeline.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a member of the booking status enum.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// BookingShowroom is a denormalized snapshot of the showroom at booking time.
type BookingShowroom struct {
	Name    string `json:"name" dynamodbav:"name" validate:"required"`
	Address string `json:"address" dynamodbav:"address" validate:"required"`
	City    string `json:"city" dynamodbav:"city" validate:"required"`
	Phone   string `json:"phone,omitempty" dynamodbav:"phone"`
	Email   string `json:"email,omitempty" dynamodbav:"email"`
}

type CustomerInfo struct {
	Name  string `json:"name" dynamodbav:"name" validate:"required"`
	Email string `json:"email" dynamodbav:"email" validate:"required,email"`
	Phone string `json:"phone" dynamodbav:"phone" validate:"required"`
}

type Booking struct {
	BookingID    string          `json:"id" dynamodbav:"booking_id"`
	UserID       string          `json:"user_id" dynamodbav:"user_id"`
	ScooterID    string          `json:"scooter_id" dynamodbav:"scooter_id"`
	ScooterName  string          `json:"scooter_name" dynamodbav:"scooter_name"`
	ScooterPrice float64         `json:"scooter_price" dynamodbav:"scooter_price"`
	Showroom     BookingShowroom `json:"showroom" dynamodbav:"showroom"`
	BookingDate  time.Time       `json:"booking_date" dynamodbav:"booking_date"`
	BookingTime  string          `json:"booking_time" dynamodbav:"booking_time"`
	Status       string          `json:"status" dynamodbav:"status"`
	CustomerInfo CustomerInfo    `json:"customer_info" dynamodbav:"customer_info"`
	Notes        string          `json:"notes,omitempty" dynamodbav:"notes"`
	CreatedAt    time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateBookingRequest struct {
	ScooterID    string          `json:"scooter_id" validate:"required"`
	Showroom     BookingShowroom `json:"showroom" validate:"required"`
	BookingDate  string          `json:"booking_date" validate:"required"` // YYYY-MM-DD
	BookingTime  string          `json:"booking_time" validate:"required"`
	CustomerInfo CustomerInfo    `json:"customer_info" validate:"required"`
	Notes        string          `json:"notes"`
}
