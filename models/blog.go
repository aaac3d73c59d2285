package models

type BlogTag struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Blog struct {
	Base
	Title      string   `json:"title" gorm:"not null"`
	Content    string   `json:"content" gorm:"type:text"`
	CoverMedia string   `json:"coverMedia"`
	TagID      *string  `json:"tagId" gorm:"type:uuid;index"`
	Tag        *BlogTag `json:"tag,omitempty" gorm:"foreignKey:TagID;constraint:OnDelete:RESTRICT"`
	ContentState
}
