package repositories

import (
	"context"
	"errors"

	"newsroom-cms/models"

	"gorm.io/gorm"
)

type SectionRepository interface {
	Create(ctx context.Context, section *models.Section) error
	GetByID(ctx context.Context, id uint) (*models.Section, error)
	GetBySlug(ctx context.Context, slug string) (*models.Section, error)
	ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error)
	GetAll(ctx context.Context) ([]models.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) Create(ctx context.Context, section *models.Section) error {
	err := r.db.WithContext(ctx).Create(section).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrorValidation{Message: "section name and slug must be unique"}
	}
	return err
}

func (r *sectionRepository) GetByID(ctx context.Context, id uint) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, translate(err, "section", id)
	}
	return &section, nil
}

func (r *sectionRepository) GetBySlug(ctx context.Context, slug string) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&section).Error; err != nil {
		return nil, translate(err, "section", slug)
	}
	return &section, nil
}

func (r *sectionRepository) ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Section{}).
		Where("name = ? OR slug = ?", name, slug).
		Count(&count).Error
	return count > 0, err
}

func (r *sectionRepository) GetAll(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	err := r.db.WithContext(ctx).Order("id asc").Find(&sections).Error
	return sections, err
}
