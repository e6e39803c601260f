package models

import "time"

type Ministry struct {
	ID          int       `json:"id" goqu:"skipinsert"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Image_ID    string    `json:"imageId"`
	Href        string    `json:"href"`
	Created_At  time.Time `json:"createdAt" goqu:"skipinsert"`
}

type MinistryCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon"`
	ImageID     string `json:"imageId"`
	Href        string `json:"href"`
}
