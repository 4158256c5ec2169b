package models

import "time"

// NewAttachment describes an upload referenced by a [temp_image N] token.
type NewAttachment struct {
	ImageID uint           `json:"image_id" validate:"required"`
	Caption string         `json:"caption" validate:"max=255"`
	Type    AttachmentType `json:"type" validate:"omitempty,oneof=normal file courtesy"`
}

type SaveArticleRequest struct {
	LongHeadline  string      `json:"long_headline" validate:"required,max=200"`
	ShortHeadline string      `json:"short_headline" validate:"max=100"`
	Slug          string      `json:"slug" validate:"max=255"`
	SectionID     uint        `json:"section_id" validate:"required"`
	IsActive      *bool       `json:"is_active"`
	IsPublished   bool        `json:"is_published"`
	IsPreview     bool        `json:"is_preview"`
	PublishedAt   *time.Time  `json:"published_at"`
	Content       string      `json:"content"`
	Snippet       string      `json:"snippet"`
	Importance    int         `json:"importance" validate:"omitempty,min=1,max=5"`
	ReadingTime   ReadingTime `json:"reading_time" validate:"omitempty,oneof=anytime morning midday evening"`

	Tags    []string `json:"tags" validate:"dive,required,max=255"`
	Topics  []string `json:"topics" validate:"dive,required,max=255"`
	Authors []uint   `json:"authors"`

	// Attachments maps the client-side temp id of each [temp_image N]
	// token to the uploaded image it stands for.
	Attachments         map[int]NewAttachment `json:"attachments" validate:"dive"`
	FeaturedImageID     *uint                 `json:"featured_image_id"`
	FeaturedImageTempID *int                  `json:"featured_image_temp_id"`
}

type CreateSectionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"max=50"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreatePersonRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
}

type CreateImageRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
	Title    string `json:"title" validate:"max=255"`
}

// ArticleSummary is the front-page projection of a head revision.
type ArticleSummary struct {
	ID            uint        `json:"id"`
	ParentID      *uint       `json:"parent_id"`
	LongHeadline  string      `json:"long_headline"`
	ShortHeadline string      `json:"short_headline"`
	Slug          string      `json:"slug"`
	SectionID     uint        `json:"section_id"`
	Snippet       string      `json:"snippet"`
	Importance    int         `json:"importance"`
	ReadingTime   ReadingTime `json:"reading_time"`
	PublishedAt   *time.Time  `json:"published_at"`
	IsPreview     bool        `json:"is_preview"`
}

func NewArticleSummary(a Article) ArticleSummary {
	return ArticleSummary{
		ID:            a.ID,
		ParentID:      a.ParentID,
		LongHeadline:  a.LongHeadline,
		ShortHeadline: a.ShortHeadline,
		Slug:          a.Slug,
		SectionID:     a.SectionID,
		Snippet:       a.Snippet,
		Importance:    a.Importance,
		ReadingTime:   a.ReadingTime,
		PublishedAt:   a.PublishedAt,
		IsPreview:     a.IsPreview,
	}
}

func NewArticleSummaries(articles []Article) []ArticleSummary {
	summaries := make([]ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, NewArticleSummary(a))
	}
	return summaries
}
