package models

// ClientPriceOption is a per-category price. Options without an owner are
// the standalone catalogue managed through the pricing endpoints.
type ClientPriceOption struct {
	Base
	CategoryName        string  `json:"categoryName" gorm:"not null"`
	Price               float64 `json:"price" gorm:"not null"`
	TourPackageID       *string `json:"tourPackageId,omitempty" gorm:"type:uuid;index"`
	DestinationTravelID *string `json:"destinationTravelId,omitempty" gorm:"type:uuid;index"`
}

type VisaPriceOption struct {
	Base
	DurationInDays  int     `json:"durationInDays" gorm:"not null"`
	Price           float64 `json:"price" gorm:"not null"`
	VisaChecklistID *string `json:"visaChecklistId,omitempty" gorm:"type:uuid;index"`
}
