package repositories

import (
	"newsroom-cms/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Section{},
		&models.Person{},
		&models.Tag{},
		&models.Topic{},
		&models.Image{},
		&models.Article{},
		&models.ImageAttachment{},
		&models.Author{},
	)
}
