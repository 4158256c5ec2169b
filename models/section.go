package models

type Section struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

type Person struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	FullName string `json:"full_name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"index"`
}
