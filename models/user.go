package models

import (
	"time"
)

// User is a staff login for the shop. The table keeps the production
// schema name (usuarios) so existing deployments migrate in place.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Login        string    `json:"login" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:senha_hash;size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "usuarios"
}
