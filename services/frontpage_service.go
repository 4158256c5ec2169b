package services

import (
	"context"
	"strconv"
	"time"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

const DefaultSectionLimit = 3

type FrontpageService interface {
	Frontpage(ctx context.Context) ([]models.Article, error)
	SectionFrontpages(ctx context.Context, limit int) (map[string][]models.Article, error)
	// SectionFrontpage accepts a section id or slug.
	SectionFrontpage(ctx context.Context, key string) (*models.Section, []models.Article, error)
	TopicArticles(ctx context.Context, topicID uint) ([]models.Article, error)
}

type FrontpageOptions struct {
	Windows  ReadingWindows
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

type frontpageService struct {
	articleRepo repositories.ArticleRepository
	sectionRepo repositories.SectionRepository
	tagRepo     repositories.TagRepository
	windows     ReadingWindows
	location    *time.Location
	now         func() time.Time
}

func NewFrontpageService(
	articleRepo repositories.ArticleRepository,
	sectionRepo repositories.SectionRepository,
	tagRepo repositories.TagRepository,
	opts FrontpageOptions,
) FrontpageService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &frontpageService{
		articleRepo: articleRepo,
		sectionRepo: sectionRepo,
		tagRepo:     tagRepo,
		windows:     opts.Windows,
		location:    opts.Location,
		now:         opts.Now,
	}
}

func (s *frontpageService) rank(articles []models.Article) []models.Article {
	return RankForFrontpage(articles, s.now().In(s.location), s.windows)
}

func (s *frontpageService) Frontpage(ctx context.Context) ([]models.Article, error) {
	heads, err := s.articleRepo.FindAllHeads(ctx)
	if err != nil {
		return nil, err
	}
	return s.rank(heads), nil
}

func (s *frontpageService) SectionFrontpages(ctx context.Context, limit int) (map[string][]models.Article, error) {
	if limit < 1 {
		limit = DefaultSectionLimit
	}
	sections, err := s.sectionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make(map[string][]models.Article, len(sections))
	for _, section := range sections {
		heads, err := s.articleRepo.FindAllHeadsForSection(ctx, section.ID)
		if err != nil {
			return nil, err
		}
		ranked := s.rank(heads)
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		results[section.Slug] = ranked
	}
	return results, nil
}

func (s *frontpageService) SectionFrontpage(ctx context.Context, key string) (*models.Section, []models.Article, error) {
	var section *models.Section
	var err error
	if id, parseErr := strconv.ParseUint(key, 10, 32); parseErr == nil {
		section, err = s.sectionRepo.GetByID(ctx, uint(id))
	} else {
		section, err = s.sectionRepo.GetBySlug(ctx, key)
	}
	if err != nil {
		return nil, nil, err
	}

	heads, err := s.articleRepo.FindAllHeadsForSection(ctx, section.ID)
	if err != nil {
		return nil, nil, err
	}
	return section, s.rank(heads), nil
}

func (s *frontpageService) TopicArticles(ctx context.Context, topicID uint) ([]models.Article, error) {
	if _, err := s.tagRepo.GetTopicByID(ctx, topicID); err != nil {
		return nil, err
	}
	heads, err := s.articleRepo.FindHeadsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return s.rank(heads), nil
}
