package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DestinationTravel struct {
	Base
	TourTitle          string              `json:"tourTitle"`
	Location           string              `json:"location" gorm:"index"`
	MinimumPrice       *float64            `json:"minimumPrice"`
	CoverMedia         []string            `json:"coverMedia" gorm:"-"`
	CoverMediaJSON     datatypes.JSON      `json:"-" gorm:"column:cover_media"`
	DepartureDate      *time.Time          `json:"departureDate"`
	ReturnDate         *time.Time          `json:"returnDate"`
	Duration           int                 `json:"duration" gorm:"not null;default:0"`
	Description        string              `json:"description" gorm:"type:text"`
	Activities         string              `json:"activities" gorm:"type:text"`
	ClientPriceOptions []ClientPriceOption `json:"clientPriceOptions" gorm:"foreignKey:DestinationTravelID;constraint:OnDelete:CASCADE"`
	ContentState
}

func (d *DestinationTravel) BeforeSave(tx *gorm.DB) error {
	d.CoverMediaJSON = EncodeMedia(d.CoverMedia)
	return nil
}

func (d *DestinationTravel) AfterFind(tx *gorm.DB) error {
	d.CoverMedia = DecodeMedia(d.CoverMediaJSON)
	return nil
}
