package models

import (
	"time"
)

// Client is a recurring customer, keyed by phone number. Clients are
// created lazily the first time a phone number shows up on an
// appointment and are never deleted by appointment operations.
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"nome_completo" gorm:"column:nome_completo;size:200;not null"`
	Phone     string    `json:"numero" gorm:"column:numero;size:30;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clientes"
}
