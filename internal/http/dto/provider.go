package dto

import (
	"time"

	"pathway.app/server/internal/model"
)

type ProviderResponse struct {
	ID           int64             `json:"id,string"`
	UserID       int64             `json:"user_id,string"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        *string           `json:"phone,omitempty"`
	Address      *string           `json:"address,omitempty"`
	ServiceType  model.ServiceType `json:"service_type"`
	Description  *string           `json:"description,omitempty"`
	Website      *string           `json:"website,omitempty"`
	Rating       float64           `json:"rating"`
	TotalReviews int               `json:"total_reviews"`
	CreatedAt    time.Time         `json:"created_at"`
}

func ToProviderResponse(p *model.Provider) *ProviderResponse {
	return &ProviderResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		ServiceType:  p.ServiceType,
		Description:  p.Description,
		Website:      p.Website,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
		CreatedAt:    p.CreatedAt,
	}
}

func ToProviderResponses(providers []model.Provider) []*ProviderResponse {
	out := make([]*ProviderResponse, 0, len(providers))
	for i := range providers {
		out = append(out, ToProviderResponse(&providers[i]))
	}
	return out
}
