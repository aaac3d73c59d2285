package models

import "time"

type CreateBlogInput struct {
	Title      string         `json:"title" validate:"required,max=255"`
	Content    string         `json:"content"`
	CoverMedia string         `json:"coverMedia"`
	TagID      *string        `json:"tagId"`
	Status     *ContentStatus `json:"status"`
}

type EditBlogInput struct {
	Title      *string        `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string        `json:"content"`
	CoverMedia *string        `json:"coverMedia"`
	TagID      *string        `json:"tagId"`
	Status     *ContentStatus `json:"status"`
}

type PriceOptionInput struct {
	CategoryName string  `json:"categoryName" validate:"required,max=100"`
	Price        float64 `json:"price" validate:"min=0"`
}

type UpsertPriceOptionInput struct {
	ID           *string `json:"id"`
	CategoryName string  `json:"categoryName" validate:"required,max=100"`
	Price        float64 `json:"price" validate:"min=0"`
}

type EditPriceOptionInput struct {
	CategoryName *string  `json:"categoryName" validate:"omitempty,min=1,max=100"`
	Price        *float64 `json:"price" validate:"omitempty,min=0"`
}

type VisaPriceOptionInput struct {
	DurationInDays int     `json:"durationInDays" validate:"min=1"`
	Price          float64 `json:"price" validate:"min=0"`
}

type UpsertVisaPriceOptionInput struct {
	ID             *string `json:"id"`
	DurationInDays int     `json:"durationInDays" validate:"min=1"`
	Price          float64 `json:"price" validate:"min=0"`
}

type EditVisaPriceOptionInput struct {
	DurationInDays *int     `json:"durationInDays" validate:"omitempty,min=1"`
	Price          *float64 `json:"price" validate:"omitempty,min=0"`
}

// TravelInput holds the fields tour packages and destinations share.
type TravelInput struct {
	TourTitle     string             `json:"tourTitle" validate:"max=255"`
	Location      string             `json:"location" validate:"max=255"`
	MinimumPrice  *float64           `json:"minimumPrice" validate:"omitempty,min=0"`
	Status        *ContentStatus     `json:"status"`
	CoverMedia    []string           `json:"coverMedia" validate:"omitempty,dive,required"`
	DepartureDate *time.Time         `json:"departureDate"`
	ReturnDate    *time.Time         `json:"returnDate"`
	Duration      *int               `json:"duration" validate:"omitempty,min=0"`
	Description   string             `json:"description"`
	Activities    string             `json:"activities"`
	PriceOptions  []PriceOptionInput `json:"priceOptions" validate:"omitempty,dive"`
}

type CreateTourPackageInput struct {
	TravelInput
	TourTypeID *string `json:"tourTypeId"`
}

type CreateDestinationInput struct {
	TravelInput
}

// EditTravelInput leaves a field untouched when it is nil.
type EditTravelInput struct {
	TourTitle              *string                  `json:"tourTitle" validate:"omitempty,max=255"`
	Location               *string                  `json:"location" validate:"omitempty,max=255"`
	MinimumPrice           *float64                 `json:"minimumPrice" validate:"omitempty,min=0"`
	Status                 *ContentStatus           `json:"status"`
	CoverMedia             []string                 `json:"coverMedia" validate:"omitempty,dive,required"`
	DepartureDate          *time.Time               `json:"departureDate"`
	ReturnDate             *time.Time               `json:"returnDate"`
	Duration               *int                     `json:"duration" validate:"omitempty,min=0"`
	Description            *string                  `json:"description"`
	Activities             *string                  `json:"activities"`
	PriceOptionsToUpsert   []UpsertPriceOptionInput `json:"priceOptionsToUpsert" validate:"omitempty,dive"`
	PriceOptionIDsToDelete []string                 `json:"priceOptionIdsToDelete"`
}

type EditTourPackageInput struct {
	EditTravelInput
	TourTypeID *string `json:"tourTypeId"`
}

type EditDestinationInput struct {
	EditTravelInput
}

type CreateVisaChecklistInput struct {
	Country          string                 `json:"country" validate:"required,max=100"`
	Location         string                 `json:"location" validate:"max=255"`
	Description      string                 `json:"description"`
	Images           []string               `json:"images" validate:"omitempty,dive,required"`
	Status           *ContentStatus         `json:"status"`
	VisaPriceOptions []VisaPriceOptionInput `json:"visaPriceOptions" validate:"omitempty,dive"`
}

type EditVisaChecklistInput struct {
	Country                   *string                      `json:"country" validate:"omitempty,min=1,max=100"`
	Location                  *string                      `json:"location" validate:"omitempty,max=255"`
	Description               *string                      `json:"description"`
	Images                    []string                     `json:"images" validate:"omitempty,dive,required"`
	Status                    *ContentStatus               `json:"status"`
	VisaPriceOptionsToUpsert  []UpsertVisaPriceOptionInput `json:"visaPriceOptionsToUpsert" validate:"omitempty,dive"`
	DurationOptionIDsToDelete []string                     `json:"durationOptionIdsToDelete"`
}
