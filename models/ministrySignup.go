package models

import "time"

// Signup status constants
const (
	SignupStatusPending  = "pending"
	SignupStatusApproved = "approved"
	SignupStatusDeclined = "declined"
)

// ChildrensMinistryName is the ministry whose signup form collects
// parent/child fields instead of a plain full name.
const ChildrensMinistryName = "Children's Ministry"

type MinistrySignup struct {
	ID              int       `json:"id" goqu:"skipinsert"`
	Ministry_Name   string    `json:"ministryName"`
	Full_Name       string    `json:"fullName"`
	Parent_Name     *string   `json:"parentName"`
	Child_Name      *string   `json:"childName"`
	Child_Age       *int      `json:"childAge"`
	Email           string    `json:"email"`
	Phone_Number    *string   `json:"phoneNumber"`
	Status          string    `json:"status"`
	Additional_Info string    `json:"additionalInfo"`
	Created_At      time.Time `json:"createdAt" goqu:"skipinsert"`
}

// MinistrySignupRequest carries both signup variants. Which fields are
// required depends on the ministry (see controllers.SubmitMinistrySignup).
type MinistrySignupRequest struct {
	Ministry    string            `json:"ministry" binding:"required"`
	FullName    string            `json:"fullName"`
	ParentName  string            `json:"parentName"`
	ChildName   string            `json:"childName"`
	ChildAge    int               `json:"childAge"`
	Email       string            `json:"email" binding:"required,email"`
	Phone       string            `json:"phone"`
	Extra       map[string]string `json:"extra"`
}

type SignupStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=pending approved declined"`
}
