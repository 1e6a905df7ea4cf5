package dto

import (
	"time"

	"pathway.app/server/internal/model"
)

type UserResponse struct {
	ID        int64          `json:"id,string"`
	Email     string         `json:"email"`
	FullName  string         `json:"full_name"`
	UserType  model.UserType `json:"user_type"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}
