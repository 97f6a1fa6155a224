package gormdb

import (
	"todolist/internal/errors"
	"todolist/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the users and todos tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.TodoModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
