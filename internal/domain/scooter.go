package domain

import "time"

type ScooterSpecs struct {
	Speed  string `json:"speed,omitempty" dynamodbav:"speed"`
	Range  string `json:"range,omitempty" dynamodbav:"range"`
	Weight string `json:"weight,omitempty" dynamodbav:"weight"`
	Motor  string `json:"motor,omitempty" dynamodbav:"motor"`
}

type Scooter struct {
	ScooterID   string       `json:"id" dynamodbav:"scooter_id"`
	Name        string       `json:"name" dynamodbav:"name"`
	Price       float64      `json:"price" dynamodbav:"price"`
	Description string       `json:"description,omitempty" dynamodbav:"description"`
	Images      []string     `json:"images" dynamodbav:"images"`
	Features    []string     `json:"features" dynamodbav:"features"`
	Specs       ScooterSpecs `json:"specs" dynamodbav:"specs"`
	Colors      []string     `json:"colors" dynamodbav:"colors"`
	InStock     bool         `json:"in_stock" dynamodbav:"in_stock"`
	CreatedAt   time.Time    `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" dynamodbav:"updated_at"`
}

type ScooterInput struct {
	Name        string       `json:"name" validate:"required"`
	Price       float64      `json:"price" validate:"required,gt=0"`
	Description string       `json:"description"`
	Features    []string     `json:"features"`
	Specs       ScooterSpecs `json:"specs"`
	Colors      []string     `json:"colors"`
	InStock     *bool        `json:"in_stock"`
}
