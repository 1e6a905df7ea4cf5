package model

import "time"

// Provider is a service provider profile. It is owned by a user account
// (UserID); authorization checks resolve a provider back to that user.
type Provider struct {
	ID           int64       `json:"id,string"`
	UserID       int64       `json:"user_id,string"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        *string     `json:"phone,omitempty"`
	Address      *string     `json:"address,omitempty"`
	ServiceType  ServiceType `json:"service_type"`
	Description  *string     `json:"description,omitempty"`
	Website      *string     `json:"website,omitempty"`
	Rating       float64     `json:"rating"`
	TotalReviews int         `json:"total_reviews"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
}
