// Package model holds the GORM persistence structs. They never leave the infra layer;
// repositories map them to domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application so
// they are stored as 36-character strings on every driver.
type UserModel struct {
	ID             uuid.UUID `gorm:"size:36;primaryKey"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string    `gorm:"type:varchar(100);not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Todos []TodoModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
