package models

import "time"

type AdminUser struct {
	ID         int       `json:"id" goqu:"skipinsert"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Email      string    `json:"email"`
	Full_Name  string    `json:"fullName"`
	Created_At time.Time `json:"createdAt" goqu:"skipinsert"`
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminPushToken struct {
	ID            int       `json:"id" goqu:"skipinsert" db:"id"`
	AdminUserID   int       `json:"adminUserId" db:"admin_user_id"`
	PushToken     string    `json:"pushToken" db:"push_token"`
	Platform      string    `json:"platform" db:"platform"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at" goqu:"skipinsert"`
}

type PushTokenRequest struct {
	PushToken string `json:"pushToken" binding:"required"`
	Platform  string `json:"platform" binding:"required,oneof=ios android web"`
}
