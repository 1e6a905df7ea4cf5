package model

import "time"

type UserType string

const (
	UserTypeClient   UserType = "CLIENT"
	UserTypeProvider UserType = "PROVIDER"
)

func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeProvider
}

type User struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
