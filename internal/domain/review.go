package domain

import "time"

type Review struct {
	ReviewID         string    `json:"id" dynamodbav:"review_id"`
	UserID           string    `json:"user_id" dynamodbav:"user_id"`
	UserName         string    `json:"user_name" dynamodbav:"user_name"`
	ScooterID        string    `json:"scooter_id" dynamodbav:"scooter_id"`
	Rating           int       `json:"rating" dynamodbav:"rating"`
	Comment          string    `json:"comment,omitempty" dynamodbav:"comment"`
	VerifiedPurchase bool      `json:"verified_purchase" dynamodbav:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateReviewRequest struct {
	ScooterID string `json:"scooter_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}
