package models

import "time"

type RequestType string

const (
	RequestFlightBooking     RequestType = "FLIGHT_BOOKING"
	RequestHotelReservation  RequestType = "HOTEL_RESERVATION"
	RequestVisaAssistance    RequestType = "VISA_ASSISTANCE"
	RequestPrivateJetCharter RequestType = "PRIVATE_JET_CHARTER"
	RequestExecutiveShuttle  RequestType = "EXECUTIVE_SHUTTLE"
	RequestTravelInsurance   RequestType = "TRAVEL_INSURANCE"
	RequestSehembzPay        RequestType = "SEHEMBZ_PAY"
	RequestTourPackage       RequestType = "TOUR_PACKAGE"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestFlightBooking, RequestHotelReservation, RequestVisaAssistance, RequestPrivateJetCharter,
		RequestExecutiveShuttle, RequestTravelInsurance, RequestSehembzPay, RequestTourPackage:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestOpen       RequestStatus = "OPEN"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
)

func (s RequestStatus) Valid() bool {
	return s == RequestOpen || s == RequestInProgress || s == RequestCompleted
}

type FlightType string

const (
	FlightOneWay    FlightType = "ONE_WAY"
	FlightRoundTrip FlightType = "ROUND_TRIP"
	FlightMultiCity FlightType = "MULTI_CITY"
)

type RideType string

const (
	RideAirportPickup RideType = "AIRPORT_PICKUP"
	RideCarHire       RideType = "CAR_HIRE"
)

// Request is a customer lead. All request types share one table; columns a
// type does not use stay empty and are omitted from its JSON.
type Request struct {
	Base
	RequestType RequestType   `json:"requestType" gorm:"type:varchar(32);not null;index"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'OPEN';index"`
	FullName    string        `json:"fullName" gorm:"not null"`
	Email       string        `json:"email" gorm:"not null"`
	PhoneNo     string        `json:"phoneNo" gorm:"not null"`

	From             string     `json:"from,omitempty" gorm:"column:from_location"`
	To               string     `json:"to,omitempty" gorm:"column:to_location"`
	DepartureDate    *time.Time `json:"departureDate,omitempty"`
	ReturnDate       *time.Time `json:"returnDate,omitempty"`
	NumberOfPersons  *int       `json:"numberOfPersons,omitempty"`
	PreferredAirline string     `json:"preferredAirline,omitempty"`
	TicketClass      string     `json:"ticketClass,omitempty"`
	FlightType       FlightType `json:"flightType,omitempty"`
	TypeOfJet        string     `json:"typeOfJet,omitempty"`

	PurposeOfTravel    string     `json:"purposeOfTravel,omitempty"`
	DestinationCountry string     `json:"destinationCountry,omitempty"`
	TravelTime         *time.Time `json:"travelTime,omitempty"`

	ArrivalDate       *time.Time `json:"arrivalDate,omitempty"`
	Comment           string     `json:"comment,omitempty"`
	AdditionalRequest string     `json:"additionalRequest,omitempty"`

	Budget                  string     `json:"budget,omitempty"`
	TravelDate              *time.Time `json:"travelDate,omitempty"`
	AccommodationPreference string     `json:"accommodationPreference,omitempty"`
	TourPackageType         string     `json:"tourPackageType,omitempty"`

	ArrivalAirport string   `json:"arrivalAirport,omitempty"`
	ArrivalTime    string   `json:"arrivalTime,omitempty"`
	RideType       RideType `json:"rideType,omitempty"`

	DurationOfInsurance string `json:"durationOfInsurance,omitempty"`
	InsuranceType       string `json:"insuranceType,omitempty"`

	ReasonForContacting string `json:"reasonForContacting,omitempty"`
	Amount              string `json:"amount,omitempty"`
}
