package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

var (
	tempImageToken = regexp.MustCompile(`\[temp_image(?:\s[^\[\]]*)?\]`)
	imageToken     = regexp.MustCompile(`\[image(?:\s[^\[\]]*)?\]`)
	// tokenArgument matches quoted strings too so a number inside a
	// caption is never mistaken for the id.
	tokenArgument = regexp.MustCompile(`"[^"]*"|[0-9]+`)
)

// tokenID returns the first bare integer argument of an inline token.
func tokenID(token string) (int, bool) {
	arg := tokenArgument.FindString(token)
	if arg == "" || arg[0] == '"' {
		return 0, false
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return id, true
}

func committedToken(attachmentID uint) string {
	return fmt.Sprintf("[image %d]", attachmentID)
}

// CommitNewAttachments replaces every [temp_image N] token with an
// [image ID] token for the attachment persisted for temp id N.
func CommitNewAttachments(content string, attachments map[int]models.ImageAttachment) (string, error) {
	if !tempImageToken.MatchString(content) {
		return content, nil
	}

	var resolveErr error
	result := tempImageToken.ReplaceAllStringFunc(content, func(token string) string {
		if resolveErr != nil {
			return token
		}
		tempID, ok := tokenID(token)
		if !ok {
			resolveErr = models.ErrorInvalidReference{Message: fmt.Sprintf("malformed image token %q", token)}
			return token
		}
		attachment, ok := attachments[tempID]
		if !ok || attachment.ID == 0 {
			resolveErr = models.ErrorInvalidReference{Message: fmt.Sprintf("no upload provided for temporary image %d", tempID)}
			return token
		}
		return committedToken(attachment.ID)
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return result, nil
}

// AttachmentResolver rewrites committed image tokens when a revision forks.
type AttachmentResolver struct {
	repo repositories.ArticleRepository
}

func NewAttachmentResolver(repo repositories.ArticleRepository) *AttachmentResolver {
	return &AttachmentResolver{repo: repo}
}

// MigrateAttachmentsForNewRevision clones the attachments of the previous
// revision that content references and points the tokens at the clones.
// Tokens for attachments of other revisions are left untouched. The
// returned map takes old attachment ids to their clones.
func (r *AttachmentResolver) MigrateAttachmentsForNewRevision(ctx context.Context, content string, previousRevisionID, newRevisionID uint) (string, map[uint]uint, error) {
	previous, err := r.repo.FindAttachmentsByRevision(ctx, previousRevisionID)
	if err != nil {
		return "", nil, fmt.Errorf("loading attachments of revision %d: %w", previousRevisionID, err)
	}
	owned := make(map[uint]models.ImageAttachment, len(previous))
	for _, attachment := range previous {
		owned[attachment.ID] = attachment
	}

	migrated := make(map[uint]uint)
	var cloneErr error
	result := imageToken.ReplaceAllStringFunc(content, func(token string) string {
		if cloneErr != nil {
			return token
		}
		id, ok := tokenID(token)
		if !ok {
			return token
		}
		newID, err := r.migrate(ctx, owned, migrated, uint(id), newRevisionID)
		if err != nil {
			cloneErr = err
			return token
		}
		if newID == 0 {
			return token
		}
		return committedToken(newID)
	})
	if cloneErr != nil {
		return "", nil, cloneErr
	}
	return result, migrated, nil
}

// MigrateAttachment clones a single attachment of the previous revision,
// reusing a clone made earlier for the same fork. It returns 0 when the
// attachment does not belong to the previous revision.
func (r *AttachmentResolver) MigrateAttachment(ctx context.Context, attachmentID, previousRevisionID, newRevisionID uint, migrated map[uint]uint) (uint, error) {
	attachment, err := r.repo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return 0, err
	}
	if attachment.ArticleID != previousRevisionID {
		return 0, nil
	}
	owned := map[uint]models.ImageAttachment{attachment.ID: *attachment}
	return r.migrate(ctx, owned, migrated, attachmentID, newRevisionID)
}

func (r *AttachmentResolver) migrate(ctx context.Context, owned map[uint]models.ImageAttachment, migrated map[uint]uint, id, newRevisionID uint) (uint, error) {
	if newID, ok := migrated[id]; ok {
		return newID, nil
	}
	attachment, ok := owned[id]
	if !ok {
		return 0, nil
	}
	clone := attachment.Clone(newRevisionID)
	if err := r.repo.CreateAttachment(ctx, &clone); err != nil {
		return 0, fmt.Errorf("cloning attachment %d: %w", id, err)
	}
	migrated[id] = clone.ID
	return clone.ID, nil
}
