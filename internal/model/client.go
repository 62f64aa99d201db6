package model

import "time"

// Client is the business entity owning a weekly schedule, its vacation
// periods and its market days.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
