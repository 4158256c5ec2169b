package services

import (
	"context"
	"errors"
	"strings"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

type TagService interface {
	CreateTag(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, id uint) (*models.Tag, error)
	CreateTopic(ctx context.Context, req models.CreateTagRequest) (*models.Topic, error)
	GetTopics(ctx context.Context) ([]models.Topic, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)

	// Check if tag already exists
	_, err := s.tagRepo.GetByName(ctx, name)
	if err == nil {
		return nil, models.ErrorValidation{Message: "tag already exists"}
	}
	var notFound models.ErrorNotFound
	if !errors.As(err, &notFound) {
		return nil, err
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.GetAll(ctx)
}

func (s *tagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

// CreateTopic returns the existing topic when the name is taken.
func (s *tagService) CreateTopic(ctx context.Context, req models.CreateTagRequest) (*models.Topic, error) {
	name := strings.TrimSpace(req.Name)

	topic, err := s.tagRepo.GetTopicByName(ctx, name)
	if err == nil {
		return topic, nil
	}
	var notFound models.ErrorNotFound
	if !errors.As(err, &notFound) {
		return nil, err
	}

	topic = &models.Topic{Name: name}
	if err := s.tagRepo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *tagService) GetTopics(ctx context.Context) ([]models.Topic, error) {
	return s.tagRepo.GetAllTopics(ctx)
}
