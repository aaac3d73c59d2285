package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-gateway/models"
	"travel-gateway/repositories"
)

type TourPackageService interface {
	CreateTourPackage(ctx context.Context, input models.CreateTourPackageInput) (*Outcome[models.TourPackage], error)
	EditTourPackage(ctx context.Context, id string, input models.EditTourPackageInput) (*Outcome[models.TourPackage], error)
	UpdateTourPackageStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.TourPackage], error)
	DeleteTourPackage(ctx context.Context, id string) (string, error)
	GetOneTourPackage(ctx context.Context, id string) (*models.TourPackage, error)
	GetHighlightedTourPackages(ctx context.Context) ([]models.TourPackage, error)
	GetAllPublishedTours(ctx context.Context) ([]models.TourPackage, error)
	GetAllTours(ctx context.Context, filter models.ContentFilter) (*models.Page[models.TourPackage], error)
	SearchTours(ctx context.Context, title string) ([]models.TourPackage, error)
}

type tourPackageService struct {
	tourRepo repositories.TourPackageRepository
	typeRepo repositories.TourTypeRepository
	deps     ContentDeps
	now      func() time.Time
}

func NewTourPackageService(tourRepo repositories.TourPackageRepository, typeRepo repositories.TourTypeRepository, deps ContentDeps) TourPackageService {
	return &tourPackageService{
		tourRepo: tourRepo,
		typeRepo: typeRepo,
		deps:     deps.withDefaults(),
		now:      time.Now,
	}
}

var tourPackageMessages = travelMessages{
	coverMedia:   "Cover media (images) is required to publish the tour package.",
	priceOptions: "At least one client category price option must exist to publish the tour package.",
	dates:        "Departure and Return dates are required to publish the tour package.",
}

func tourPackagePrerequisites(tourTypeID *string, req travelRequirements) PrerequisiteCheck {
	return func() error {
		if tourTypeID == nil || *tourTypeID == "" {
			return models.BadRequest("Tour Type ID is required to publish a Tour Package.")
		}
		return req.check(tourPackageMessages)
	}
}

func (s *tourPackageService) ensureTourType(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := s.typeRepo.GetByID(ctx, *id); err != nil {
		return translateNotFound(err, "Tour Type not found")
	}
	return nil
}

func (s *tourPackageService) CreateTourPackage(ctx context.Context, input models.CreateTourPackageInput) (*Outcome[models.TourPackage], error) {
	tourTypeID := trimmedOrNil(input.TourTypeID)
	if err := s.ensureTourType(ctx, tourTypeID); err != nil {
		return nil, err
	}

	duration, err := tripDuration(input.DepartureDate, input.ReturnDate)
	if err != nil {
		return nil, err
	}
	if input.DepartureDate == nil && input.Duration != nil {
		duration = *input.Duration
	}

	options, err := newClientOptions(input.PriceOptions)
	if err != nil {
		return nil, err
	}

	req := travelRequirements{
		coverMedia:   len(input.CoverMedia),
		priceOptions: len(options),
		departure:    input.DepartureDate,
		ret:          input.ReturnDate,
	}
	state, err := tourPackageWorkflow.Initial(input.Status, tourPackagePrerequisites(tourTypeID, req), s.now())
	if err != nil {
		return nil, err
	}

	description, err := s.deps.packText(input.Description)
	if err != nil {
		return nil, err
	}
	activities, err := s.deps.packText(input.Activities)
	if err != nil {
		return nil, err
	}

	tour := &models.TourPackage{
		TourTitle:          strings.TrimSpace(input.TourTitle),
		Location:           strings.TrimSpace(input.Location),
		MinimumPrice:       input.MinimumPrice,
		TourTypeID:         tourTypeID,
		CoverMedia:         input.CoverMedia,
		DepartureDate:      input.DepartureDate,
		ReturnDate:         input.ReturnDate,
		Duration:           duration,
		Description:        description,
		Activities:         activities,
		ClientPriceOptions: options,
		ContentState:       state,
	}
	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, err
	}
	slog.Info("tour package created", "id", tour.ID, "status", tour.Status, "price_options", len(options))

	stored, err := s.GetOneTourPackage(ctx, tour.ID)
	if err != nil {
		return nil, err
	}

	message := "Tour saved as draft successfully"
	if stored.Status == models.StatusPublished {
		message = "Tour published successfully"
	}
	return &Outcome[models.TourPackage]{Message: message, Item: stored}, nil
}

func (s *tourPackageService) EditTourPackage(ctx context.Context, id string, input models.EditTourPackageInput) (*Outcome[models.TourPackage], error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Tour Package not found")
	}
	if tour.Status == models.StatusArchived || tour.Archived {
		return nil, models.BadRequest("Cannot edit an archived Tour Package")
	}

	if input.TourTypeID != nil {
		tourTypeID := trimmedOrNil(input.TourTypeID)
		if err := s.ensureTourType(ctx, tourTypeID); err != nil {
			return nil, err
		}
		tour.TourTypeID = tourTypeID
		tour.TourType = nil
	}
	if err := applyTravelEdit(&travelFields{
		title:         &tour.TourTitle,
		location:      &tour.Location,
		minimumPrice:  &tour.MinimumPrice,
		coverMedia:    &tour.CoverMedia,
		departureDate: &tour.DepartureDate,
		returnDate:    &tour.ReturnDate,
		duration:      &tour.Duration,
		description:   &tour.Description,
		activities:    &tour.Activities,
	}, input.EditTravelInput, s.deps); err != nil {
		return nil, err
	}

	changes, optionCount, err := planClientOptions(tour.ClientPriceOptions, input.PriceOptionsToUpsert, input.PriceOptionIDsToDelete,
		func(opt *models.ClientPriceOption) { opt.TourPackageID = &tour.ID })
	if err != nil {
		return nil, err
	}

	req := travelRequirements{
		coverMedia:   len(tour.CoverMedia),
		priceOptions: optionCount,
		departure:    tour.DepartureDate,
		ret:          tour.ReturnDate,
	}
	check := tourPackagePrerequisites(tour.TourTypeID, req)

	message := "Tour Package updated successfully"
	clearHighlights := false
	if input.Status != nil && *input.Status != tour.Status {
		t, err := tourPackageWorkflow.Apply(&tour.ContentState, *input.Status, check, s.now())
		if err != nil {
			return nil, err
		}
		clearHighlights = t.ClearHighlights
		if t.To == models.StatusPublished {
			message = "Tour Package published successfully"
		}
		s.deps.Metrics.RecordTransition(tourPackageWorkflow.Rules().Entity, string(t.To))
	} else if tour.Status.Live() {
		if err := check(); err != nil {
			return nil, err
		}
	}

	tour.ClientPriceOptions = nil
	if err := s.tourRepo.SaveWithOptions(ctx, tour, changes, clearHighlights); err != nil {
		return nil, err
	}

	stored, err := s.GetOneTourPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.TourPackage]{Message: message, Item: stored}, nil
}

func (s *tourPackageService) UpdateTourPackageStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.TourPackage], error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Tour Package not found")
	}

	req := travelRequirements{
		coverMedia:   len(tour.CoverMedia),
		priceOptions: len(tour.ClientPriceOptions),
		departure:    tour.DepartureDate,
		ret:          tour.ReturnDate,
	}
	t, err := tourPackageWorkflow.Apply(&tour.ContentState, status, tourPackagePrerequisites(tour.TourTypeID, req), s.now())
	if err != nil {
		return nil, err
	}
	if err := s.tourRepo.UpdateStatus(ctx, tour, tour.ID, t.ClearHighlights); err != nil {
		return nil, err
	}
	s.deps.Metrics.RecordTransition(tourPackageWorkflow.Rules().Entity, string(t.To))
	slog.Info("tour package status changed", "id", id, "from", t.From, "to", t.To)

	stored, err := s.GetOneTourPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.TourPackage]{Message: t.Message, Item: stored}, nil
}

func (s *tourPackageService) DeleteTourPackage(ctx context.Context, id string) (string, error) {
	if err := s.tourRepo.Delete(ctx, id); err != nil {
		return "", translateNotFound(err, "Tour Package not found")
	}
	slog.Info("tour package deleted", "id", id)
	return "Tour Package deleted successfully", nil
}

func (s *tourPackageService) GetOneTourPackage(ctx context.Context, id string) (*models.TourPackage, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Tour Package not found")
	}
	s.unpack(tour)
	return tour, nil
}

func (s *tourPackageService) GetHighlightedTourPackages(ctx context.Context) ([]models.TourPackage, error) {
	return s.unpackAll(s.tourRepo.ListHighlighted(ctx))
}

func (s *tourPackageService) GetAllPublishedTours(ctx context.Context) ([]models.TourPackage, error) {
	return s.unpackAll(s.tourRepo.ListPublished(ctx))
}

func (s *tourPackageService) GetAllTours(ctx context.Context, filter models.ContentFilter) (*models.Page[models.TourPackage], error) {
	paging, err := prepareContentFilter(&filter, s.now())
	if err != nil {
		return nil, err
	}

	tours, total, err := s.tourRepo.List(ctx, filter, paging)
	if err != nil {
		return nil, err
	}
	for i := range tours {
		s.unpack(&tours[i])
	}
	return &models.Page[models.TourPackage]{Data: tours, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}

func (s *tourPackageService) SearchTours(ctx context.Context, title string) ([]models.TourPackage, error) {
	if strings.TrimSpace(title) == "" {
		return []models.TourPackage{}, nil
	}
	return s.unpackAll(s.tourRepo.SearchTitle(ctx, title, SearchLimit))
}

func (s *tourPackageService) unpack(tour *models.TourPackage) {
	tour.Description = s.deps.Compressor.Decompress(tour.Description)
	tour.Activities = s.deps.Compressor.Decompress(tour.Activities)
}

func (s *tourPackageService) unpackAll(tours []models.TourPackage, err error) ([]models.TourPackage, error) {
	if err != nil {
		return nil, err
	}
	for i := range tours {
		s.unpack(&tours[i])
	}
	return tours, nil
}
