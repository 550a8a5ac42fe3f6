package domain

import "time"

type Customer struct {
	ID           int64
	UserID       int64 // identity provider subject, unique
	Name         string
	Email        string
	Phone        *string
	Address      *string
	RegisteredAt time.Time
}

type Article struct {
	ID          int64
	Name        string
	Description *string
	Price       int64 // cents
	Stock       int64
	CreatedAt   time.Time
}
