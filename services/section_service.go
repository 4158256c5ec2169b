package services

import (
	"context"
	"strings"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
	"newsroom-cms/util"
)

type SectionService interface {
	CreateSection(ctx context.Context, req models.CreateSectionRequest) (*models.Section, error)
	GetSections(ctx context.Context) ([]models.Section, error)
}

type sectionService struct {
	sectionRepo repositories.SectionRepository
}

func NewSectionService(sectionRepo repositories.SectionRepository) SectionService {
	return &sectionService{sectionRepo: sectionRepo}
}

func (s *sectionService) CreateSection(ctx context.Context, req models.CreateSectionRequest) (*models.Section, error) {
	name := strings.TrimSpace(req.Name)
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return nil, models.ErrorValidation{Message: "slug may only contain lowercase letters, digits and single hyphens"}
	}

	exists, err := s.sectionRepo.ExistsByNameOrSlug(ctx, name, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrorValidation{Message: "section name and slug must be unique"}
	}

	section := &models.Section{Name: name, Slug: slug}
	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *sectionService) GetSections(ctx context.Context) ([]models.Section, error) {
	return s.sectionRepo.GetAll(ctx)
}
