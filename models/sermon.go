package models

import (
	"time"

	"github.com/lib/pq"
)

type Sermon struct {
	ID          int            `json:"id" goqu:"skipinsert"`
	Title       string         `json:"title"`
	Preacher    string         `json:"preacher"`
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	Media_URL   *string        `json:"mediaUrl"`
	Tags        pq.StringArray `json:"tags"`
	Type        string         `json:"type"`
	Published   bool           `json:"published"`
	Day_Held    string         `json:"dayHeld"`
	Created_At  time.Time      `json:"createdAt" goqu:"skipinsert"`
}

type SermonCreate struct {
	Title       string   `json:"title" binding:"required"`
	Preacher    string   `json:"preacher" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description"`
	MediaURL    string   `json:"mediaUrl"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type"`
	Published   bool     `json:"published"`
	DayHeld     string   `json:"dayHeld"`
}
