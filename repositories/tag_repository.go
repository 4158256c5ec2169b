package repositories

import (
	"context"

	"newsroom-cms/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)

	CreateTopic(ctx context.Context, topic *models.Topic) error
	GetTopicByName(ctx context.Context, name string) (*models.Topic, error)
	GetTopicByID(ctx context.Context, id uint) (*models.Topic, error)
	GetAllTopics(ctx context.Context) ([]models.Topic, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return translate(r.db.WithContext(ctx).Create(tag).Error, "tag", tag.Name)
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, translate(err, "tag", name)
	}
	return &tag, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err, "tag", id)
	}
	return &tag, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return translate(r.db.WithContext(ctx).Create(topic).Error, "topic", topic.Name)
}

func (r *tagRepository) GetTopicByName(ctx context.Context, name string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&topic).Error; err != nil {
		return nil, translate(err, "topic", name)
	}
	return &topic, nil
}

func (r *tagRepository) GetTopicByID(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, translate(err, "topic", id)
	}
	return &topic, nil
}

func (r *tagRepository) GetAllTopics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.WithContext(ctx).Order("name asc").Find(&topics).Error
	return topics, err
}
