package models

import "time"

// RequestContact is embedded in every intake form.
type RequestContact struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	PhoneNo  string `json:"phoneNo" validate:"required,max=50"`
}

type FlightBookingInput struct {
	RequestContact
	From             string     `json:"from" validate:"required"`
	To               string     `json:"to" validate:"required"`
	DepartureDate    time.Time  `json:"departureDate" validate:"required"`
	ReturnDate       *time.Time `json:"returnDate"`
	NumberOfPersons  int        `json:"numberOfPersons" validate:"required,min=1"`
	PreferredAirline string     `json:"preferredAirline" validate:"required"`
	TicketClass      string     `json:"ticketClass" validate:"required"`
	FlightType       FlightType `json:"flightType" validate:"required,oneof=ONE_WAY ROUND_TRIP MULTI_CITY"`
}

type VisaRequestInput struct {
	RequestContact
	PurposeOfTravel    string    `json:"purposeOfTravel" validate:"required"`
	DestinationCountry string    `json:"destinationCountry" validate:"required"`
	TravelTime         time.Time `json:"travelTime" validate:"required"`
}

type PrivateJetInput struct {
	RequestContact
	From            string     `json:"from" validate:"required"`
	To              string     `json:"to" validate:"required"`
	DepartureDate   time.Time  `json:"departureDate" validate:"required"`
	ReturnDate      *time.Time `json:"returnDate"`
	NumberOfPersons int        `json:"numberOfPersons" validate:"required,min=1"`
	FlightType      FlightType `json:"flightType" validate:"required,oneof=ONE_WAY ROUND_TRIP MULTI_CITY"`
	TypeOfJet       string     `json:"typeOfJet" validate:"required"`
}

type HotelReservationInput struct {
	RequestContact
	ArrivalDate        time.Time `json:"arrivalDate" validate:"required"`
	DepartureDate      time.Time `json:"departureDate" validate:"required"`
	NumberOfPersons    int       `json:"numberOfPersons" validate:"required,min=1"`
	DestinationCountry string    `json:"destinationCountry" validate:"required"`
	Comment            string    `json:"comment"`
	AdditionalRequest  string    `json:"additionalRequest"`
}

type TourPackageRequestInput struct {
	RequestContact
	DestinationCountry      string    `json:"destinationCountry" validate:"required"`
	Budget                  string    `json:"budget" validate:"required"`
	TravelDate              time.Time `json:"travelDate" validate:"required"`
	NumberOfPersons         int       `json:"numberOfPersons" validate:"required,min=1"`
	AccommodationPreference string    `json:"accommodationPreference" validate:"required"`
	TourPackageType         string    `json:"tourPackageType" validate:"required"`
	AdditionalRequest       string    `json:"additionalRequest"`
	Comment                 string    `json:"comment"`
}

type ExecutiveShuttleInput struct {
	RequestContact
	ArrivalAirport  string    `json:"arrivalAirport" validate:"required"`
	ArrivalDate     time.Time `json:"arrivalDate" validate:"required"`
	ArrivalTime     string    `json:"arrivalTime" validate:"required,hhmm"`
	NumberOfPersons int       `json:"numberOfPersons" validate:"required,min=1"`
	RideType        RideType  `json:"rideType" validate:"required,oneof=AIRPORT_PICKUP CAR_HIRE"`
}

type TravelInsuranceInput struct {
	RequestContact
	DurationOfInsurance string `json:"durationOfInsurance" validate:"required"`
	NumberOfPersons     int    `json:"numberOfPersons" validate:"required,min=1"`
	DestinationCountry  string `json:"destinationCountry" validate:"required"`
	InsuranceType       string `json:"insuranceType" validate:"required"`
}

type SehembzPayInput struct {
	RequestContact
	ReasonForContacting string `json:"reasonForContacting" validate:"required"`
	Amount              string `json:"amount" validate:"required"`
}

type UpdateRequestStatusInput struct {
	Status RequestStatus `json:"status" validate:"required,oneof=OPEN IN_PROGRESS COMPLETED"`
}
