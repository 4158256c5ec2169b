package models

import "time"

// Resource carries the identity shared by every authorable record.
type Resource struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Publishable marks a record as part of a revision lineage. The lineage
// root points at itself once it has been persisted.
type Publishable struct {
	ParentID  *uint `json:"parent_id" gorm:"index;uniqueIndex:idx_lineage_head,where:is_head = true"`
	IsHead    bool  `json:"is_head" gorm:"index;default:false"`
	IsPreview bool  `json:"is_preview" gorm:"default:false"`
}

// IsRoot reports whether the revision owning these fields is its lineage root.
func (p Publishable) IsRoot(id uint) bool {
	return p.ParentID != nil && *p.ParentID == id
}

// Revisionable is implemented by records the revision manager can fork.
type Revisionable interface {
	GetResource() *Resource
	GetPublishable() *Publishable
	TableName() string
}

type Author struct {
	ID         uint    `json:"-" gorm:"primarykey"`
	ResourceID uint    `json:"-" gorm:"index;not null"`
	PersonID   uint    `json:"person_id" gorm:"not null"`
	Person     *Person `json:"person,omitempty" gorm:"foreignKey:PersonID"`
	Order      int     `json:"order" gorm:"column:position;not null"`
}
