package dbmysql

import (
	"time"
)

type AdminUser struct {
	AdminID      uint64    `gorm:"primaryKey;autoIncrement;column:admin_id" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;column:username" json:"username"`
	Email        string    `gorm:"size:255;column:email" json:"email"`
	PasswordHash string    `gorm:"size:255;column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
