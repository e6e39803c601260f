package models

import (
	"time"

	"github.com/lib/pq"
)

// Story status constants
const (
	StoryStatusDraft     = "draft"
	StoryStatusPublished = "published"
	StoryStatusArchived  = "archived"
)

type Story struct {
	ID                int            `json:"id" goqu:"skipinsert"`
	Title             string         `json:"title"`
	Content           string         `json:"content"`
	Excerpt           *string        `json:"excerpt"`
	Category          string         `json:"category"`
	Contributor_Name  string         `json:"contributorName"`
	Contributor_Email *string        `json:"contributorEmail"`
	Contributor_Phone *string        `json:"contributorPhone"`
	Image_URL         *string        `json:"imageUrl"`
	Status            string         `json:"status"`
	Featured          bool           `json:"featured"`
	Tags              pq.StringArray `json:"tags"`
	Created_At        time.Time      `json:"createdAt" goqu:"skipinsert"`
	Updated_At        time.Time      `json:"updatedAt" goqu:"skipinsert"`
}

type StoryCreate struct {
	Title            string   `json:"title" binding:"required"`
	Content          string   `json:"content" binding:"required"`
	Excerpt          string   `json:"excerpt"`
	Category         string   `json:"category" binding:"required"`
	ContributorName  string   `json:"contributorName" binding:"required"`
	ContributorEmail string   `json:"contributorEmail"`
	ContributorPhone string   `json:"contributorPhone"`
	ImageURL         string   `json:"imageUrl"`
	Status           string   `json:"status" binding:"omitempty,oneof=draft published archived"`
	Featured         bool     `json:"featured"`
	Tags             []string `json:"tags"`
}

type StoryStats struct {
	Total_Stories     int `json:"totalStories"`
	Published_Stories int `json:"publishedStories"`
	Draft_Stories     int `json:"draftStories"`
	Featured_Stories  int `json:"featuredStories"`
}
