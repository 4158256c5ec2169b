package repositories

import (
	"context"

	"newsroom-cms/models"

	"gorm.io/gorm"
)

// ImageDeletedFunc runs after an image row has been removed.
type ImageDeletedFunc func(image models.Image) error

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	// Delete removes the image, detaches it from every attachment and then
	// calls onDeleted. A callback error does not undo the delete.
	Delete(ctx context.Context, id uint, onDeleted ImageDeletedFunc) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, translate(err, "image", id)
	}
	return &image, nil
}

func (r *imageRepository) Delete(ctx context.Context, id uint, onDeleted ImageDeletedFunc) error {
	var image models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, id).Error; err != nil {
			return translate(err, "image", id)
		}
		if err := tx.Model(&models.ImageAttachment{}).
			Where("image_id = ?", id).
			Update("image_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Image{}, id).Error
	})
	if err != nil {
		return err
	}
	if onDeleted == nil {
		return nil
	}
	return onDeleted(image)
}
