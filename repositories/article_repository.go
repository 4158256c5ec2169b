package repositories

import (
	"context"
	"time"

	"newsroom-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	// Lineage writes, usable with any Revisionable record.
	Insert(ctx context.Context, entity models.Revisionable) (uint, error)
	Save(ctx context.Context, entity models.Revisionable) error
	UpdateFields(ctx context.Context, entity models.Revisionable, fields map[string]interface{}) error
	ClearHeads(ctx context.Context, entity models.Revisionable, parentID uint) error
	LockLineage(ctx context.Context, entity models.Revisionable, parentID uint) error
	FindPreviousRevision(ctx context.Context, parentID, id uint, dest models.Revisionable) error
	Transaction(ctx context.Context, fn func(repo ArticleRepository) error) error

	GetByID(ctx context.Context, id uint) (*models.Article, error)
	FindByLineage(ctx context.Context, parentID uint) ([]models.Article, error)
	FindHeadsByLineage(ctx context.Context, parentID uint) ([]models.Article, error)
	FindAllHeads(ctx context.Context) ([]models.Article, error)
	FindAllHeadsForSection(ctx context.Context, sectionID uint) ([]models.Article, error)
	FindHeadsByTopic(ctx context.Context, topicID uint) ([]models.Article, error)
	DeleteLineage(ctx context.Context, parentID uint) error

	CreateAttachment(ctx context.Context, attachment *models.ImageAttachment) error
	FindAttachmentsByRevision(ctx context.Context, revisionID uint) ([]models.ImageAttachment, error)
	FindAttachmentByID(ctx context.Context, id uint) (*models.ImageAttachment, error)

	ReplaceAuthors(ctx context.Context, resourceID uint, authors []models.Author) error
	ReplaceTags(ctx context.Context, article *models.Article, tags []models.Tag) error
	ReplaceTopics(ctx context.Context, article *models.Article, topics []models.Topic) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Insert(ctx context.Context, entity models.Revisionable) (uint, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return 0, translate(err, entity.TableName(), "revision")
	}
	return entity.GetResource().ID, nil
}

func (r *articleRepository) Save(ctx context.Context, entity models.Revisionable) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
	return translate(err, entity.TableName(), entity.GetResource().ID)
}

func (r *articleRepository) UpdateFields(ctx context.Context, entity models.Revisionable, fields map[string]interface{}) error {
	id := entity.GetResource().ID
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now()
	}
	result := r.db.WithContext(ctx).Table(entity.TableName()).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return translate(result.Error, entity.TableName(), id)
	}
	if result.RowsAffected == 0 {
		return models.NotFound(entity.TableName(), id)
	}
	return nil
}

func (r *articleRepository) ClearHeads(ctx context.Context, entity models.Revisionable, parentID uint) error {
	return r.db.WithContext(ctx).Table(entity.TableName()).
		Where("parent_id = ? AND is_head = ?", parentID, true).
		Update("is_head", false).Error
}

// LockLineage takes row locks on every revision of the lineage so forks
// on the same lineage run one after another.
func (r *articleRepository) LockLineage(ctx context.Context, entity models.Revisionable, parentID uint) error {
	var ids []uint
	err := r.db.WithContext(ctx).Table(entity.TableName()).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("parent_id = ?", parentID).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return models.NotFound("lineage", parentID)
	}
	return nil
}

// FindPreviousRevision loads the revision of the lineage with the next
// lower id than id. dest must be a zero value.
func (r *articleRepository) FindPreviousRevision(ctx context.Context, parentID, id uint, dest models.Revisionable) error {
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND id < ?", parentID, id).
		Order("id desc").
		Take(dest).Error
	return translate(err, "revision before", id)
}

func (r *articleRepository) Transaction(ctx context.Context, fn func(repo ArticleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&articleRepository{db: tx})
	})
}

func (r *articleRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Section").
		Preload("Tags").
		Preload("Topics").
		Preload("Authors", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Authors.Person").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Attachments.Image").
		Preload("FeaturedImage.Image")
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.preloaded(ctx).First(&article, id).Error; err != nil {
		return nil, translate(err, "article", id)
	}
	return &article, nil
}

func (r *articleRepository) FindByLineage(ctx context.Context, parentID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindHeadsByLineage(ctx context.Context, parentID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND is_head = ?", parentID, true).
		Order("id desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindAllHeads(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("is_head = ?", true).
		Order("id asc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindAllHeadsForSection(ctx context.Context, sectionID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("section_id = ? AND is_head = ?", sectionID, true).
		Order("id asc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindHeadsByTopic(ctx context.Context, topicID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Joins("JOIN article_topics ON article_topics.article_id = articles.id").
		Where("article_topics.topic_id = ? AND articles.is_head = ?", topicID, true).
		Order("articles.id asc").
		Find(&articles).Error
	return articles, err
}

// DeleteLineage removes every revision of a lineage together with the
// rows each revision owns. Images themselves are left alone.
func (r *articleRepository) DeleteLineage(ctx context.Context, parentID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Article{}).Where("parent_id = ?", parentID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return models.NotFound("lineage", parentID)
		}
		if err := tx.Where("article_id IN ?", ids).Delete(&models.ImageAttachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resource_id IN ?", ids).Delete(&models.Author{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM article_tags WHERE article_id IN ?", ids).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM article_topics WHERE article_id IN ?", ids).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Article{}).Error
	})
}

func (r *articleRepository) CreateAttachment(ctx context.Context, attachment *models.ImageAttachment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(attachment).Error
	return translate(err, "attachment", attachment.ID)
}

func (r *articleRepository) FindAttachmentsByRevision(ctx context.Context, revisionID uint) ([]models.ImageAttachment, error) {
	var attachments []models.ImageAttachment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", revisionID).
		Order("id asc").
		Find(&attachments).Error
	return attachments, err
}

func (r *articleRepository) FindAttachmentByID(ctx context.Context, id uint) (*models.ImageAttachment, error) {
	var attachment models.ImageAttachment
	if err := r.db.WithContext(ctx).Preload("Image").First(&attachment, id).Error; err != nil {
		return nil, translate(err, "attachment", id)
	}
	return &attachment, nil
}

func (r *articleRepository) ReplaceAuthors(ctx context.Context, resourceID uint, authors []models.Author) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("resource_id = ?", resourceID).Delete(&models.Author{}).Error; err != nil {
		return err
	}
	if len(authors) == 0 {
		return nil
	}
	for i := range authors {
		authors[i].ID = 0
		authors[i].ResourceID = resourceID
	}
	return db.Omit(clause.Associations).Create(&authors).Error
}

func (r *articleRepository) ReplaceTags(ctx context.Context, article *models.Article, tags []models.Tag) error {
	association := r.db.WithContext(ctx).Model(article).Association("Tags")
	if len(tags) == 0 {
		return association.Clear()
	}
	return association.Replace(tags)
}

func (r *articleRepository) ReplaceTopics(ctx context.Context, article *models.Article, topics []models.Topic) error {
	association := r.db.WithContext(ctx).Model(article).Association("Topics")
	if len(topics) == 0 {
		return association.Clear()
	}
	return association.Replace(topics)
}
