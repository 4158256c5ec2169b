package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"newsroom-cms/models"
	"newsroom-cms/repositories"

	"github.com/rs/zerolog/log"
)

type ArticleService interface {
	// SaveArticle creates a lineage when id is 0. Otherwise it saves over
	// revision id, forking a new head when createRevision is set.
	SaveArticle(ctx context.Context, id uint, req models.SaveArticleRequest, createRevision bool) (*models.Article, error)
	GetArticle(ctx context.Context, id uint) (*models.Article, error)
	GetRevisions(ctx context.Context, id uint) ([]models.Article, error)
	GetPreviousRevision(ctx context.Context, id uint) (*models.Article, error)
	DeleteArticle(ctx context.Context, id uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	sectionRepo repositories.SectionRepository
	personRepo  repositories.PersonRepository
	tagRepo     repositories.TagRepository
	imageRepo   repositories.ImageRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	sectionRepo repositories.SectionRepository,
	personRepo repositories.PersonRepository,
	tagRepo repositories.TagRepository,
	imageRepo repositories.ImageRepository,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		sectionRepo: sectionRepo,
		personRepo:  personRepo,
		tagRepo:     tagRepo,
		imageRepo:   imageRepo,
	}
}

func (s *articleService) SaveArticle(ctx context.Context, id uint, req models.SaveArticleRequest, createRevision bool) (*models.Article, error) {
	if _, err := s.sectionRepo.GetByID(ctx, req.SectionID); err != nil {
		return nil, err
	}

	var article models.Article
	if id != 0 {
		current, err := s.articleRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		article = *current
		article.Section = nil
		article.Tags = nil
		article.Topics = nil
		article.Authors = nil
		article.Attachments = nil
		article.FeaturedImage = nil
	}
	applySaveRequest(&article, req)
	article.ApplyDefaults()
	if err := article.Validate(); err != nil {
		return nil, err
	}

	// Lookups run before the write transaction so it only holds the lineage.
	authors, err := s.resolveAuthors(ctx, req.Authors)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	topics, err := s.resolveTopics(ctx, req.Topics)
	if err != nil {
		return nil, err
	}
	for tempID, upload := range req.Attachments {
		if _, err := s.imageRepo.GetByID(ctx, upload.ImageID); err != nil {
			return nil, fmt.Errorf("temporary image %d: %w", tempID, err)
		}
	}
	if req.FeaturedImageTempID != nil {
		if _, ok := req.Attachments[*req.FeaturedImageTempID]; !ok {
			return nil, models.ErrorInvalidReference{
				Message: fmt.Sprintf("no upload provided for featured temporary image %d", *req.FeaturedImageTempID),
			}
		}
	} else if req.FeaturedImageID != nil {
		if _, err := s.articleRepo.FindAttachmentByID(ctx, *req.FeaturedImageID); err != nil {
			var notFound models.ErrorNotFound
			if errors.As(err, &notFound) {
				return nil, models.ErrorInvalidReference{Message: "featured " + notFound.Message}
			}
			return nil, err
		}
	}

	previousID := article.ID
	err = s.articleRepo.Transaction(ctx, func(tx repositories.ArticleRepository) error {
		if err := NewRevisionManager(tx).Save(ctx, &article, createRevision); err != nil {
			return err
		}
		forked := previousID != 0 && article.ID != previousID

		committed, err := createAttachments(ctx, tx, article.ID, req.Attachments)
		if err != nil {
			return err
		}
		content, err := CommitNewAttachments(article.Content, committed)
		if err != nil {
			return err
		}

		featuredID := req.FeaturedImageID
		if req.FeaturedImageTempID != nil {
			attachmentID := committed[*req.FeaturedImageTempID].ID
			featuredID = &attachmentID
		}

		if forked {
			resolver := NewAttachmentResolver(tx)
			var migrated map[uint]uint
			content, migrated, err = resolver.MigrateAttachmentsForNewRevision(ctx, content, previousID, article.ID)
			if err != nil {
				return err
			}
			if featuredID != nil && req.FeaturedImageTempID == nil {
				newID, err := resolver.MigrateAttachment(ctx, *featuredID, previousID, article.ID, migrated)
				if err != nil {
					return err
				}
				if newID != 0 {
					featuredID = &newID
				}
			}
		}

		article.Content = content
		article.FeaturedImageID = featuredID
		if err := tx.UpdateFields(ctx, &article, map[string]interface{}{
			"content":           content,
			"featured_image_id": featuredID,
		}); err != nil {
			return err
		}

		if err := tx.ReplaceAuthors(ctx, article.ID, authors); err != nil {
			return fmt.Errorf("saving authors: %w", err)
		}
		if err := tx.ReplaceTags(ctx, &article, tags); err != nil {
			return fmt.Errorf("saving tags: %w", err)
		}
		if err := tx.ReplaceTopics(ctx, &article, topics); err != nil {
			return fmt.Errorf("saving topics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("article_id", article.ID).
		Uint("previous_id", previousID).
		Bool("create_revision", createRevision).
		Msg("article saved")

	return s.articleRepo.GetByID(ctx, article.ID)
}

func applySaveRequest(article *models.Article, req models.SaveArticleRequest) {
	article.LongHeadline = req.LongHeadline
	article.ShortHeadline = req.ShortHeadline
	article.Slug = req.Slug
	article.SectionID = req.SectionID
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	} else if article.ID == 0 {
		article.IsActive = true
	}
	article.IsPublished = req.IsPublished
	article.IsPreview = req.IsPreview
	article.PublishedAt = req.PublishedAt
	article.Content = req.Content
	article.Snippet = req.Snippet
	article.Importance = req.Importance
	article.ReadingTime = req.ReadingTime
}

// createAttachments persists one attachment per upload, bound to the
// revision, in temp id order.
func createAttachments(ctx context.Context, tx repositories.ArticleRepository, revisionID uint, uploads map[int]models.NewAttachment) (map[int]models.ImageAttachment, error) {
	tempIDs := make([]int, 0, len(uploads))
	for tempID := range uploads {
		tempIDs = append(tempIDs, tempID)
	}
	sort.Ints(tempIDs)

	committed := make(map[int]models.ImageAttachment, len(uploads))
	for _, tempID := range tempIDs {
		upload := uploads[tempID]
		imageID := upload.ImageID
		attachment := models.ImageAttachment{
			ArticleID: revisionID,
			ImageID:   &imageID,
			Caption:   upload.Caption,
			Type:      upload.Type,
		}
		if attachment.Type == "" {
			attachment.Type = models.AttachmentNormal
		}
		if err := tx.CreateAttachment(ctx, &attachment); err != nil {
			return nil, fmt.Errorf("attaching temporary image %d: %w", tempID, err)
		}
		committed[tempID] = attachment
	}
	return committed, nil
}

// resolveAuthors skips people that do not exist; orders stay contiguous.
func (s *articleService) resolveAuthors(ctx context.Context, personIDs []uint) ([]models.Author, error) {
	authors := make([]models.Author, 0, len(personIDs))
	for _, personID := range personIDs {
		person, err := s.personRepo.GetByID(ctx, personID)
		if err != nil {
			var notFound models.ErrorNotFound
			if errors.As(err, &notFound) {
				log.Debug().Uint("person_id", personID).Msg("skipping unknown author")
				continue
			}
			return nil, err
		}
		authors = append(authors, models.Author{PersonID: person.ID, Order: len(authors)})
	}
	return authors, nil
}

func (s *articleService) resolveTags(ctx context.Context, names []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range uniqueNames(names) {
		tag, err := s.tagRepo.GetByName(ctx, name)
		if err == nil {
			tags = append(tags, *tag)
			continue
		}
		var notFound models.ErrorNotFound
		if !errors.As(err, &notFound) {
			return nil, err
		}
		newTag := &models.Tag{Name: name}
		if err := s.tagRepo.Create(ctx, newTag); err != nil {
			return nil, err
		}
		tags = append(tags, *newTag)
	}
	return tags, nil
}

func (s *articleService) resolveTopics(ctx context.Context, names []string) ([]models.Topic, error) {
	var topics []models.Topic
	for _, name := range uniqueNames(names) {
		topic, err := s.tagRepo.GetTopicByName(ctx, name)
		if err == nil {
			topics = append(topics, *topic)
			continue
		}
		var notFound models.ErrorNotFound
		if !errors.As(err, &notFound) {
			return nil, err
		}
		newTopic := &models.Topic{Name: name}
		if err := s.tagRepo.CreateTopic(ctx, newTopic); err != nil {
			return nil, err
		}
		topics = append(topics, *newTopic)
	}
	return topics, nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

func (s *articleService) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

func (s *articleService) GetRevisions(ctx context.Context, id uint) ([]models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.ParentID == nil {
		return []models.Article{*article}, nil
	}
	return s.articleRepo.FindByLineage(ctx, *article.ParentID)
}

func (s *articleService) GetPreviousRevision(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var previous models.Article
	if err := NewRevisionManager(s.articleRepo).PreviousRevision(ctx, article, &previous); err != nil {
		return nil, err
	}
	return &previous, nil
}

// DeleteArticle removes the whole lineage the revision belongs to.
func (s *articleService) DeleteArticle(ctx context.Context, id uint) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	parentID := article.ID
	if article.ParentID != nil {
		parentID = *article.ParentID
	}
	if err := s.articleRepo.DeleteLineage(ctx, parentID); err != nil {
		return err
	}
	log.Info().Uint("lineage", parentID).Msg("article lineage deleted")
	return nil
}
