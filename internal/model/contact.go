package model

import "time"

// Contact is a single lead captured from the website contact form.
// Once stored it is append-only: no update or delete path exists.
type Contact struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Company      string    `json:"company,omitempty"`
	Location     string    `json:"location,omitempty"`
	SpaceType    string    `json:"spaceType,omitempty"`
	CustomerSize string    `json:"customerSize,omitempty"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
