package models

import "time"

type Subscriber struct {
	ID         int       `json:"id" goqu:"skipinsert"`
	Email      string    `json:"email"`
	Created_At time.Time `json:"createdAt" goqu:"skipinsert"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
