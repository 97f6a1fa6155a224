package model

import (
	"time"

	"github.com/google/uuid"
)

// TodoModel mirrors the 'todos' table. UserID references users.id.
type TodoModel struct {
	ID          uuid.UUID `gorm:"size:36;primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description *string   `gorm:"type:text"`
	Completed   bool      `gorm:"not null;default:false"`
	UserID      uuid.UUID `gorm:"size:36;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
