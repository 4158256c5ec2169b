package services

import (
	"context"
	"strconv"
	"testing"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
	"newsroom-cms/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func committed(id uint) models.ImageAttachment {
	return models.ImageAttachment{ID: id}
}

func TestCommitNewAttachments(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		attachments map[int]models.ImageAttachment
		want        string
	}{
		{
			name:    "no tokens leaves content alone",
			content: "<p>Plain  text\n with spacing</p>",
			want:    "<p>Plain  text\n with spacing</p>",
		},
		{
			name:        "single token",
			content:     "before [temp_image 1] after",
			attachments: map[int]models.ImageAttachment{1: committed(42)},
			want:        "before [image 42] after",
		},
		{
			name:        "extra arguments are dropped",
			content:     `[temp_image 2 "A caption with 7 in it" large]`,
			attachments: map[int]models.ImageAttachment{2: committed(8)},
			want:        "[image 8]",
		},
		{
			name:        "repeated and mixed tokens",
			content:     "[temp_image 1]\n\t[image 5] [temp_image 2][temp_image 1]",
			attachments: map[int]models.ImageAttachment{1: committed(10), 2: committed(11)},
			want:        "[image 10]\n\t[image 5] [image 11][image 10]",
		},
		{
			name:    "committed tokens are not touched",
			content: "[image 3] [imagery 4]",
			want:    "[image 3] [imagery 4]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommitNewAttachments(tt.content, tt.attachments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommitNewAttachments_UnknownTempID(t *testing.T) {
	_, err := CommitNewAttachments("[temp_image 1] [temp_image 3]", map[int]models.ImageAttachment{1: committed(10)})

	var invalid models.ErrorInvalidReference
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "3")
}

func TestCommitNewAttachments_MalformedToken(t *testing.T) {
	_, err := CommitNewAttachments(`[temp_image "no id"]`, map[int]models.ImageAttachment{1: committed(10)})

	var invalid models.ErrorInvalidReference
	assert.ErrorAs(t, err, &invalid)
}

type AttachmentResolverTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     repositories.ArticleRepository
	previous *models.Article
	next     *models.Article
	other    *models.Article
	image    *models.Image
}

func (s *AttachmentResolverTestSuite) SetupTest() {
	db := testutil.NewDB(s.T())
	s.ctx = context.Background()
	s.repo = repositories.NewArticleRepository(db)

	section := &models.Section{Name: "News", Slug: "news"}
	s.Require().NoError(db.Create(section).Error)
	s.image = &models.Image{Filename: "2024/03/fire.jpg", Title: "Fire"}
	s.Require().NoError(db.Create(s.image).Error)

	s.previous = s.insertArticle(section.ID)
	s.next = s.insertArticle(section.ID)
	s.other = s.insertArticle(section.ID)
}

func (s *AttachmentResolverTestSuite) insertArticle(sectionID uint) *models.Article {
	article := &models.Article{LongHeadline: "Headline", SectionID: sectionID, Importance: 1}
	_, err := s.repo.Insert(s.ctx, article)
	s.Require().NoError(err)
	return article
}

func (s *AttachmentResolverTestSuite) attach(articleID uint, caption string) models.ImageAttachment {
	imageID := s.image.ID
	attachment := models.ImageAttachment{ArticleID: articleID, ImageID: &imageID, Caption: caption, Type: models.AttachmentCourtesy}
	s.Require().NoError(s.repo.CreateAttachment(s.ctx, &attachment))
	return attachment
}

func (s *AttachmentResolverTestSuite) TestMigrateClonesOwnedAttachments() {
	first := s.attach(s.previous.ID, "first")
	second := s.attach(s.previous.ID, "second")
	foreign := s.attach(s.other.ID, "foreign")

	content := "[image " + uintString(first.ID) + "] text " +
		"[image " + uintString(foreign.ID) + "] " +
		"[image " + uintString(second.ID) + " right] " +
		"[image " + uintString(first.ID) + "] [image 9999]"

	resolver := NewAttachmentResolver(s.repo)
	got, migrated, err := resolver.MigrateAttachmentsForNewRevision(s.ctx, content, s.previous.ID, s.next.ID)
	s.Require().NoError(err)

	clones, err := s.repo.FindAttachmentsByRevision(s.ctx, s.next.ID)
	s.Require().NoError(err)
	s.Require().Len(clones, 2)
	s.Equal(clones[0].ID, migrated[first.ID])
	s.Equal(clones[1].ID, migrated[second.ID])
	s.Equal("first", clones[0].Caption)
	s.Equal(models.AttachmentCourtesy, clones[0].Type)
	s.Equal(s.image.ID, *clones[0].ImageID)

	want := "[image " + uintString(clones[0].ID) + "] text " +
		"[image " + uintString(foreign.ID) + "] " +
		"[image " + uintString(clones[1].ID) + "] " +
		"[image " + uintString(clones[0].ID) + "] [image 9999]"
	s.Equal(want, got)

	// The previous revision keeps its own rows.
	originals, err := s.repo.FindAttachmentsByRevision(s.ctx, s.previous.ID)
	s.Require().NoError(err)
	s.Len(originals, 2)
}

func (s *AttachmentResolverTestSuite) TestMigrateWithoutTokens() {
	s.attach(s.previous.ID, "unused")

	got, migrated, err := NewAttachmentResolver(s.repo).MigrateAttachmentsForNewRevision(s.ctx, "no images here", s.previous.ID, s.next.ID)
	s.Require().NoError(err)
	s.Equal("no images here", got)
	s.Empty(migrated)

	clones, err := s.repo.FindAttachmentsByRevision(s.ctx, s.next.ID)
	s.Require().NoError(err)
	s.Empty(clones)
}

func (s *AttachmentResolverTestSuite) TestMigrateAttachmentReusesClone() {
	owned := s.attach(s.previous.ID, "featured")
	foreign := s.attach(s.other.ID, "foreign")
	resolver := NewAttachmentResolver(s.repo)

	migrated := map[uint]uint{}
	newID, err := resolver.MigrateAttachment(s.ctx, owned.ID, s.previous.ID, s.next.ID, migrated)
	s.Require().NoError(err)
	s.NotZero(newID)

	again, err := resolver.MigrateAttachment(s.ctx, owned.ID, s.previous.ID, s.next.ID, migrated)
	s.Require().NoError(err)
	s.Equal(newID, again)

	none, err := resolver.MigrateAttachment(s.ctx, foreign.ID, s.previous.ID, s.next.ID, migrated)
	s.Require().NoError(err)
	s.Zero(none)

	_, err = resolver.MigrateAttachment(s.ctx, 9999, s.previous.ID, s.next.ID, migrated)
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
}

func TestAttachmentResolverTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentResolverTestSuite))
}
