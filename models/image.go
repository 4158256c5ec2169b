package models

type AttachmentType string

const (
	AttachmentNormal   AttachmentType = "normal"
	AttachmentFile     AttachmentType = "file"
	AttachmentCourtesy AttachmentType = "courtesy"
)

// ImageSizes lists the variants rendered next to every original upload.
var ImageSizes = map[string][2]int{
	"large":  {1600, 900},
	"medium": {800, 600},
	"square": {250, 250},
}

type Image struct {
	Resource
	Filename string `json:"filename" gorm:"not null"`
	Title    string `json:"title"`
}

func (Image) TableName() string { return "images" }

// ImageAttachment binds an image to one article revision. Each revision
// owns its attachments; forks clone them.
type ImageAttachment struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	ArticleID uint           `json:"article_id" gorm:"index"`
	ImageID   *uint          `json:"image_id" gorm:"index"`
	Image     *Image         `json:"image,omitempty" gorm:"foreignKey:ImageID"`
	Caption   string         `json:"caption"`
	Type      AttachmentType `json:"type" gorm:"size:20;default:'normal'"`
}

func (ImageAttachment) TableName() string { return "image_attachments" }

// Clone returns a copy bound to another revision, sharing the image.
func (a ImageAttachment) Clone(articleID uint) ImageAttachment {
	return ImageAttachment{
		ArticleID: articleID,
		ImageID:   a.ImageID,
		Caption:   a.Caption,
		Type:      a.Type,
	}
}
