package repositories_test

import (
	"context"
	"errors"
	"testing"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
	"newsroom-cms/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArticleRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	repo    repositories.ArticleRepository
	section *models.Section
}

func (s *ArticleRepositoryTestSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.ctx = context.Background()
	s.repo = repositories.NewArticleRepository(s.db)
	s.section = &models.Section{Name: "Culture", Slug: "culture"}
	s.Require().NoError(s.db.Create(s.section).Error)
}

func (s *ArticleRepositoryTestSuite) revision(parentID *uint, head bool) *models.Article {
	article := &models.Article{LongHeadline: "Review", SectionID: s.section.ID, Importance: 1}
	article.ParentID = parentID
	article.IsHead = head
	id, err := s.repo.Insert(s.ctx, article)
	s.Require().NoError(err)
	s.Equal(article.ID, id)
	return article
}

func (s *ArticleRepositoryTestSuite) root() *models.Article {
	article := s.revision(nil, true)
	s.Require().NoError(s.repo.UpdateFields(s.ctx, article, map[string]interface{}{"parent_id": article.ID}))
	article.ParentID = &article.ID
	return article
}

func (s *ArticleRepositoryTestSuite) TestSecondHeadConflicts() {
	root := s.root()

	second := &models.Article{LongHeadline: "Review", SectionID: s.section.ID, Importance: 1}
	second.ParentID = root.ParentID
	second.IsHead = true
	_, err := s.repo.Insert(s.ctx, second)

	var conflict models.ErrorConflict
	s.ErrorAs(err, &conflict)

	// A non-head revision in the same lineage is fine.
	s.revision(root.ParentID, false)
}

func (s *ArticleRepositoryTestSuite) TestClearHeads() {
	root := s.root()
	s.Require().NoError(s.repo.ClearHeads(s.ctx, root, root.ID))
	s.revision(root.ParentID, true)

	heads, err := s.repo.FindHeadsByLineage(s.ctx, root.ID)
	s.Require().NoError(err)
	s.Require().Len(heads, 1)
	s.NotEqual(root.ID, heads[0].ID)
}

func (s *ArticleRepositoryTestSuite) TestLockLineage() {
	root := s.root()
	s.NoError(s.repo.LockLineage(s.ctx, root, root.ID))

	err := s.repo.LockLineage(s.ctx, root, root.ID+50)
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
}

func (s *ArticleRepositoryTestSuite) TestUpdateFieldsMissingRow() {
	article := &models.Article{}
	article.ID = 404

	err := s.repo.UpdateFields(s.ctx, article, map[string]interface{}{"content": "x"})

	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
}

func (s *ArticleRepositoryTestSuite) TestFindPreviousRevision() {
	root := s.root()

	var previous models.Article
	err := s.repo.FindPreviousRevision(s.ctx, root.ID, root.ID, &previous)
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)

	s.Require().NoError(s.repo.ClearHeads(s.ctx, root, root.ID))
	middle := s.revision(root.ParentID, false)
	head := s.revision(root.ParentID, true)

	s.Require().NoError(s.repo.FindPreviousRevision(s.ctx, root.ID, head.ID, &previous))
	s.Equal(middle.ID, previous.ID)

	var beforeMiddle models.Article
	s.Require().NoError(s.repo.FindPreviousRevision(s.ctx, root.ID, middle.ID, &beforeMiddle))
	s.Equal(root.ID, beforeMiddle.ID)
}

func (s *ArticleRepositoryTestSuite) TestHeadsForSection() {
	other := &models.Section{Name: "Science", Slug: "science"}
	s.Require().NoError(s.db.Create(other).Error)

	first := s.root()
	s.Require().NoError(s.repo.ClearHeads(s.ctx, first, first.ID))
	newer := s.revision(first.ParentID, true)
	second := s.root()

	elsewhere := &models.Article{LongHeadline: "Comet", SectionID: other.ID, Importance: 1}
	elsewhere.IsHead = true
	_, err := s.repo.Insert(s.ctx, elsewhere)
	s.Require().NoError(err)

	heads, err := s.repo.FindAllHeadsForSection(s.ctx, s.section.ID)
	s.Require().NoError(err)
	s.Require().Len(heads, 2)
	s.Equal(newer.ID, heads[0].ID)
	s.Equal(second.ID, heads[1].ID)

	all, err := s.repo.FindAllHeads(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *ArticleRepositoryTestSuite) TestTransactionRollsBack() {
	boom := errors.New("boom")
	var inserted uint

	err := s.repo.Transaction(s.ctx, func(tx repositories.ArticleRepository) error {
		article := &models.Article{LongHeadline: "Rolled back", SectionID: s.section.ID, Importance: 1}
		id, err := tx.Insert(s.ctx, article)
		s.Require().NoError(err)
		inserted = id
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repo.GetByID(s.ctx, inserted)
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
}

func (s *ArticleRepositoryTestSuite) TestReplaceAuthorsKeepsOrder() {
	article := s.root()
	people := []models.Person{{FullName: "A", Slug: "a"}, {FullName: "B", Slug: "b"}}
	s.Require().NoError(s.db.Create(&people).Error)

	s.Require().NoError(s.repo.ReplaceAuthors(s.ctx, article.ID, []models.Author{
		{PersonID: people[1].ID, Order: 0},
		{PersonID: people[0].ID, Order: 1},
	}))
	s.Require().NoError(s.repo.ReplaceAuthors(s.ctx, article.ID, []models.Author{
		{PersonID: people[0].ID, Order: 0},
	}))

	loaded, err := s.repo.GetByID(s.ctx, article.ID)
	s.Require().NoError(err)
	s.Require().Len(loaded.Authors, 1)
	s.Equal(people[0].ID, loaded.Authors[0].PersonID)
	s.Require().NotNil(loaded.Authors[0].Person)
	s.Equal("A", loaded.Authors[0].Person.FullName)
}

func TestArticleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleRepositoryTestSuite))
}
