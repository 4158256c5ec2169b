package services

import (
	"context"
	"fmt"
	"time"

	"newsroom-cms/models"
	"newsroom-cms/repositories"

	"github.com/rs/zerolog/log"
)

// RevisionManager owns fork-on-save for publishable records.
type RevisionManager interface {
	// Save persists entity. With createRevision set and an existing
	// lineage it inserts a new head revision; otherwise it writes in place.
	Save(ctx context.Context, entity models.Revisionable, createRevision bool) error
	// PreviousRevision loads into dest the revision of entity's lineage
	// with the next lower id, or entity itself for a lineage root.
	PreviousRevision(ctx context.Context, entity models.Revisionable, dest models.Revisionable) error
}

type revisionManager struct {
	repo repositories.ArticleRepository
}

func NewRevisionManager(repo repositories.ArticleRepository) RevisionManager {
	return &revisionManager{repo: repo}
}

func (m *revisionManager) Save(ctx context.Context, entity models.Revisionable, createRevision bool) error {
	resource := entity.GetResource()
	publishable := entity.GetPublishable()
	previousID := resource.ID
	savedResource, savedPublishable := *resource, *publishable

	err := m.repo.Transaction(ctx, func(tx repositories.ArticleRepository) error {
		if createRevision {
			publishable.IsHead = true
			if publishable.ParentID != nil {
				parentID := *publishable.ParentID
				if err := tx.LockLineage(ctx, entity, parentID); err != nil {
					return err
				}
				if err := tx.ClearHeads(ctx, entity, parentID); err != nil {
					return fmt.Errorf("clearing heads of lineage %d: %w", parentID, err)
				}
				resource.ID = 0
				resource.CreatedAt = time.Time{}
				resource.UpdatedAt = time.Time{}
			}
		}

		if resource.ID == 0 {
			// A record starting its own lineage is always the head.
			if publishable.ParentID == nil {
				publishable.IsHead = true
			}
			if _, err := tx.Insert(ctx, entity); err != nil {
				return err
			}
		} else if err := tx.Save(ctx, entity); err != nil {
			return err
		}

		if publishable.ParentID != nil {
			return nil
		}
		id := resource.ID
		publishable.ParentID = &id
		return tx.UpdateFields(ctx, entity, map[string]interface{}{"parent_id": id})
	})
	if err != nil {
		// Give the caller back the record it passed in.
		*resource, *publishable = savedResource, savedPublishable
		return err
	}

	log.Debug().
		Str("table", entity.TableName()).
		Uint("id", resource.ID).
		Uint("parent_id", *publishable.ParentID).
		Bool("forked", previousID != 0 && previousID != resource.ID).
		Msg("revision saved")
	return nil
}

func (m *revisionManager) PreviousRevision(ctx context.Context, entity models.Revisionable, dest models.Revisionable) error {
	resource := entity.GetResource()
	publishable := entity.GetPublishable()

	if publishable.ParentID == nil {
		return models.NotFound("lineage of "+entity.TableName(), resource.ID)
	}
	if publishable.IsRoot(resource.ID) {
		return copyRevision(entity, dest)
	}
	return m.repo.FindPreviousRevision(ctx, *publishable.ParentID, resource.ID, dest)
}

func copyRevision(src, dest models.Revisionable) error {
	switch s := src.(type) {
	case *models.Article:
		d, ok := dest.(*models.Article)
		if !ok {
			return fmt.Errorf("cannot copy %s revision into %T", src.TableName(), dest)
		}
		*d = *s
		return nil
	default:
		return fmt.Errorf("unsupported revision type %T", src)
	}
}
