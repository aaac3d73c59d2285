package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TourType struct {
	Base
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
}

type TourPackage struct {
	Base
	TourTitle          string              `json:"tourTitle"`
	Location           string              `json:"location" gorm:"index"`
	MinimumPrice       *float64            `json:"minimumPrice"`
	TourTypeID         *string             `json:"tourTypeId" gorm:"type:uuid;index"`
	TourType           *TourType           `json:"tourType,omitempty" gorm:"foreignKey:TourTypeID;constraint:OnDelete:SET NULL"`
	CoverMedia         []string            `json:"coverMedia" gorm:"-"`
	CoverMediaJSON     datatypes.JSON      `json:"-" gorm:"column:cover_media"`
	DepartureDate      *time.Time          `json:"departureDate"`
	ReturnDate         *time.Time          `json:"returnDate"`
	Duration           int                 `json:"duration" gorm:"not null;default:0"`
	Description        string              `json:"description" gorm:"type:text"`
	Activities         string              `json:"activities" gorm:"type:text"`
	ClientPriceOptions []ClientPriceOption `json:"clientPriceOptions" gorm:"foreignKey:TourPackageID;constraint:OnDelete:CASCADE"`
	ContentState
}

func (t *TourPackage) BeforeSave(tx *gorm.DB) error {
	t.CoverMediaJSON = EncodeMedia(t.CoverMedia)
	return nil
}

func (t *TourPackage) AfterFind(tx *gorm.DB) error {
	t.CoverMedia = DecodeMedia(t.CoverMediaJSON)
	return nil
}
