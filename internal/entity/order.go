package entity

import "time"

type Order struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	ExpectedDate string    `json:"expectedDate"`
	Courier      string    `json:"courier"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
