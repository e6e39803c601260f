package models

import "time"

type Event struct {
	ID          int       `json:"id" goqu:"skipinsert"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location"`
	Ministry    *string   `json:"ministry"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	Image_ID    string    `json:"imageId"`
	Created_At  time.Time `json:"createdAt" goqu:"skipinsert"`
}

type EventCreate struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location"`
	Ministry    string `json:"ministry"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
	ImageID     string `json:"imageId"`
}

type EventRSVP struct {
	ID         int       `json:"id" goqu:"skipinsert"`
	Full_Name  string    `json:"fullName"`
	Email      string    `json:"email"`
	Event      string    `json:"event"`
	Created_At time.Time `json:"createdAt" goqu:"skipinsert"`
}

type EventRSVPCreate struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Event    string `json:"event" binding:"required"`
}
