package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ReadingTime string

const (
	ReadingAnytime ReadingTime = "anytime"
	ReadingMorning ReadingTime = "morning"
	ReadingMidday  ReadingTime = "midday"
	ReadingEvening ReadingTime = "evening"
)

const (
	MinImportance = 1
	MaxImportance = 5
)

type Article struct {
	Resource
	Publishable

	LongHeadline  string     `json:"long_headline" gorm:"size:200;not null"`
	ShortHeadline string     `json:"short_headline" gorm:"size:100"`
	Slug          string     `json:"slug" gorm:"index"`
	SectionID     uint       `json:"section_id" gorm:"index;not null"`
	Section       *Section   `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	IsActive      bool       `json:"is_active"`
	IsPublished   bool       `json:"is_published" gorm:"default:false"`
	PublishedAt   *time.Time `json:"published_at"`
	Content       string     `json:"content" gorm:"type:text"`
	Snippet       string     `json:"snippet" gorm:"type:text"`
	Shares        uint       `json:"shares" gorm:"default:0"`

	Importance  int         `json:"importance" gorm:"default:1;not null"`
	ReadingTime ReadingTime `json:"reading_time" gorm:"size:20;default:'anytime'"`

	Tags        []Tag             `json:"tags,omitempty" gorm:"many2many:article_tags;"`
	Topics      []Topic           `json:"topics,omitempty" gorm:"many2many:article_topics;"`
	Authors     []Author          `json:"authors,omitempty" gorm:"foreignKey:ResourceID"`
	Attachments []ImageAttachment `json:"attachments,omitempty" gorm:"foreignKey:ArticleID"`

	FeaturedImageID *uint            `json:"featured_image_id"`
	FeaturedImage   *ImageAttachment `json:"featured_image,omitempty" gorm:"foreignKey:FeaturedImageID"`
}

func (Article) TableName() string { return "articles" }

func (a *Article) GetResource() *Resource       { return &a.Resource }
func (a *Article) GetPublishable() *Publishable { return &a.Publishable }

// Validate checks the editorial fields the ranking engine depends on.
func (a Article) Validate() error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.LongHeadline, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.ShortHeadline, validation.Length(0, 100)),
		validation.Field(&a.SectionID, validation.Required.Error("section is required")),
		validation.Field(&a.Importance,
			validation.Min(MinImportance).Error("importance must be between 1 and 5"),
			validation.Max(MaxImportance).Error("importance must be between 1 and 5"),
		),
		validation.Field(&a.ReadingTime,
			validation.In(ReadingAnytime, ReadingMorning, ReadingMidday, ReadingEvening).
				Error("reading time must be one of anytime, morning, midday, evening"),
		),
	)
	if err != nil {
		return ErrorValidation{Message: err.Error()}
	}
	return nil
}

// ApplyDefaults fills the editorial fields a client may omit.
func (a *Article) ApplyDefaults() {
	if a.Importance == 0 {
		a.Importance = MinImportance
	}
	if a.ReadingTime == "" {
		a.ReadingTime = ReadingAnytime
	}
}
