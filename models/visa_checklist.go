package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VisaChecklist struct {
	Base
	Country          string            `json:"country" gorm:"index"`
	Location         string            `json:"location"`
	Description      string            `json:"description" gorm:"type:text"`
	Images           []string          `json:"images" gorm:"-"`
	ImagesJSON       datatypes.JSON    `json:"-" gorm:"column:images"`
	VisaPriceOptions []VisaPriceOption `json:"visaPriceOptions" gorm:"foreignKey:VisaChecklistID;constraint:OnDelete:CASCADE"`
	ContentState
}

func (v *VisaChecklist) BeforeSave(tx *gorm.DB) error {
	v.ImagesJSON = EncodeMedia(v.Images)
	return nil
}

func (v *VisaChecklist) AfterFind(tx *gorm.DB) error {
	v.Images = DecodeMedia(v.ImagesJSON)
	return nil
}
