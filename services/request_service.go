package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/pubsub"
	"travel-gateway/repositories"
)

type RequestService interface {
	RequestFlightBooking(ctx context.Context, input models.FlightBookingInput) (*Outcome[models.Request], error)
	CreateVisaRequest(ctx context.Context, input models.VisaRequestInput) (*Outcome[models.Request], error)
	RequestPrivateJet(ctx context.Context, input models.PrivateJetInput) (*Outcome[models.Request], error)
	RequestHotelReservation(ctx context.Context, input models.HotelReservationInput) (*Outcome[models.Request], error)
	RequestTourPackage(ctx context.Context, input models.TourPackageRequestInput) (*Outcome[models.Request], error)
	RequestExecutiveShuttle(ctx context.Context, input models.ExecutiveShuttleInput) (*Outcome[models.Request], error)
	RequestTravelInsurance(ctx context.Context, input models.TravelInsuranceInput) (*Outcome[models.Request], error)
	RequestSehembzPay(ctx context.Context, input models.SehembzPayInput) (*Outcome[models.Request], error)

	UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*Outcome[models.Request], error)
	GetRequestByID(ctx context.Context, id string) (*models.Request, error)
	GetAllRequests(ctx context.Context, filter models.RequestFilter) (*models.Page[models.Request], error)
}

type requestService struct {
	requestRepo repositories.RequestRepository
	notifier    Notifier
	now         func() time.Time
}

func NewRequestService(requestRepo repositories.RequestRepository, notifier Notifier) RequestService {
	return &requestService{requestRepo: requestRepo, notifier: notifier, now: time.Now}
}

type requestReceivedPayload struct {
	ID          string             `json:"id"`
	RequestType models.RequestType `json:"requestType"`
	FullName    string             `json:"fullName"`
	Email       string             `json:"email"`
}

func newRequest(kind models.RequestType, contact models.RequestContact) *models.Request {
	return &models.Request{
		RequestType: kind,
		Status:      models.RequestOpen,
		FullName:    strings.TrimSpace(contact.FullName),
		Email:       strings.ToLower(strings.TrimSpace(contact.Email)),
		PhoneNo:     strings.TrimSpace(contact.PhoneNo),
	}
}

// submit stores req and announces it on the notification topic.
func (s *requestService) submit(ctx context.Context, req *models.Request, message string) (*Outcome[models.Request], error) {
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	slog.Info("request received", "id", req.ID, "type", req.RequestType)

	notifyQuietly(ctx, s.notifier, pubsub.EventRequestReceived, requestReceivedPayload{
		ID:          req.ID,
		RequestType: req.RequestType,
		FullName:    req.FullName,
		Email:       req.Email,
	})
	return &Outcome[models.Request]{Message: message, Item: req}, nil
}

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func (s *requestService) RequestFlightBooking(ctx context.Context, in models.FlightBookingInput) (*Outcome[models.Request], error) {
	if in.ReturnDate != nil && in.ReturnDate.Before(in.DepartureDate) {
		return nil, models.BadRequest("Return date must be after departure date")
	}
	req := newRequest(models.RequestFlightBooking, in.RequestContact)
	req.From = in.From
	req.To = in.To
	req.DepartureDate = timePtr(in.DepartureDate)
	req.ReturnDate = in.ReturnDate
	req.NumberOfPersons = intPtr(in.NumberOfPersons)
	req.PreferredAirline = in.PreferredAirline
	req.TicketClass = in.TicketClass
	req.FlightType = in.FlightType
	return s.submit(ctx, req, "Flight booking request created successfully")
}

func (s *requestService) CreateVisaRequest(ctx context.Context, in models.VisaRequestInput) (*Outcome[models.Request], error) {
	req := newRequest(models.RequestVisaAssistance, in.RequestContact)
	req.PurposeOfTravel = in.PurposeOfTravel
	req.DestinationCountry = in.DestinationCountry
	req.TravelTime = timePtr(in.TravelTime)
	return s.submit(ctx, req, "Visa assistance request created successfully")
}

func (s *requestService) RequestPrivateJet(ctx context.Context, in models.PrivateJetInput) (*Outcome[models.Request], error) {
	if in.ReturnDate != nil && in.ReturnDate.Before(in.DepartureDate) {
		return nil, models.BadRequest("Return date must be after departure date")
	}
	req := newRequest(models.RequestPrivateJetCharter, in.RequestContact)
	req.From = in.From
	req.To = in.To
	req.DepartureDate = timePtr(in.DepartureDate)
	req.ReturnDate = in.ReturnDate
	req.NumberOfPersons = intPtr(in.NumberOfPersons)
	req.FlightType = in.FlightType
	req.TypeOfJet = in.TypeOfJet
	return s.submit(ctx, req, "Private jet charter request created successfully")
}

func (s *requestService) RequestHotelReservation(ctx context.Context, in models.HotelReservationInput) (*Outcome[models.Request], error) {
	if in.DepartureDate.Before(in.ArrivalDate) {
		return nil, models.BadRequest("Departure date must be after arrival date")
	}
	req := newRequest(models.RequestHotelReservation, in.RequestContact)
	req.ArrivalDate = timePtr(in.ArrivalDate)
	req.DepartureDate = timePtr(in.DepartureDate)
	req.NumberOfPersons = intPtr(in.NumberOfPersons)
	req.DestinationCountry = in.DestinationCountry
	req.Comment = in.Comment
	req.AdditionalRequest = in.AdditionalRequest
	return s.submit(ctx, req, "Hotel reservation request created successfully")
}

func (s *requestService) RequestTourPackage(ctx context.Context, in models.TourPackageRequestInput) (*Outcome[models.Request], error) {
	req := newRequest(models.RequestTourPackage, in.RequestContact)
	req.DestinationCountry = in.DestinationCountry
	req.Budget = in.Budget
	req.TravelDate = timePtr(in.TravelDate)
	req.NumberOfPersons = intPtr(in.NumberOfPersons)
	req.AccommodationPreference = in.AccommodationPreference
	req.TourPackageType = in.TourPackageType
	req.AdditionalRequest = in.AdditionalRequest
	req.Comment = in.Comment
	return s.submit(ctx, req, "Tour package request created successfully")
}

func (s *requestService) RequestExecutiveShuttle(ctx context.Context, in models.ExecutiveShuttleInput) (*Outcome[models.Request], error) {
	req := newRequest(models.RequestExecutiveShuttle, in.RequestContact)
	req.ArrivalAirport = in.ArrivalAirport
	req.ArrivalDate = timePtr(in.ArrivalDate)
	req.ArrivalTime = in.ArrivalTime
	req.NumberOfPersons = intPtr(in.NumberOfPersons)
	req.RideType = in.RideType
	return s.submit(ctx, req, "Executive shuttle request created successfully")
}

func (s *requestService) RequestTravelInsurance(ctx context.Context, in models.TravelInsuranceInput) (*Outcome[models.Request], error) {
	req := newRequest(models.RequestTravelInsurance, in.RequestContact)
	req.DurationOfInsurance = in.DurationOfInsurance
	req.NumberOfPersons = intPtr(in.NumberOfPersons)
	req.DestinationCountry = in.DestinationCountry
	req.InsuranceType = in.InsuranceType
	return s.submit(ctx, req, "Travel insurance request created successfully")
}

func (s *requestService) RequestSehembzPay(ctx context.Context, in models.SehembzPayInput) (*Outcome[models.Request], error) {
	req := newRequest(models.RequestSehembzPay, in.RequestContact)
	req.ReasonForContacting = in.ReasonForContacting
	req.Amount = in.Amount
	return s.submit(ctx, req, "Sehembz Pay request created successfully")
}

func (s *requestService) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*Outcome[models.Request], error) {
	if !status.Valid() {
		return nil, models.BadRequestf("Invalid request status %q", status)
	}
	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, translateNotFound(err, "Request not found")
	}
	slog.Info("request status changed", "id", id, "status", status)

	req, err := s.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.Request]{Message: "Request status updated successfully", Item: req}, nil
}

func (s *requestService) GetRequestByID(ctx context.Context, id string) (*models.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Request not found")
	}
	return req, nil
}

func (s *requestService) GetAllRequests(ctx context.Context, filter models.RequestFilter) (*models.Page[models.Request], error) {
	if filter.RequestType != "" && !filter.RequestType.Valid() {
		return nil, models.BadRequestf("Invalid request type %q", filter.RequestType)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, models.BadRequestf("Invalid request status %q", filter.Status)
	}
	filter.StartDate, filter.EndDate = helper.ResolveDateRange(filter.DateRangePreset, filter.StartDate, filter.EndDate, s.now())
	paging := helper.NormalizePage(filter.Page, filter.PageSize)

	requests, total, err := s.requestRepo.List(ctx, filter, paging)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Request]{Data: requests, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}
