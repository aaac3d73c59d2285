package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-gateway/models"
	"travel-gateway/repositories"
)

type DestinationService interface {
	CreateDestinationTravel(ctx context.Context, input models.CreateDestinationInput) (*Outcome[models.DestinationTravel], error)
	EditDestinationTravel(ctx context.Context, id string, input models.EditDestinationInput) (*Outcome[models.DestinationTravel], error)
	UpdateDestinationTravelStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.DestinationTravel], error)
	DeleteDestinationTravel(ctx context.Context, id string) (string, error)
	GetDestinationTravel(ctx context.Context, id string) (*models.DestinationTravel, error)
	GetHighlightedDestinations(ctx context.Context) ([]models.DestinationTravel, error)
	GetAllPublishedDestinations(ctx context.Context) ([]models.DestinationTravel, error)
	GetAllDestinationTravels(ctx context.Context, filter models.ContentFilter) (*models.Page[models.DestinationTravel], error)
	SearchTourTitles(ctx context.Context, title string) ([]models.DestinationTravel, error)
}

type destinationService struct {
	destRepo repositories.DestinationRepository
	deps     ContentDeps
	now      func() time.Time
}

func NewDestinationService(destRepo repositories.DestinationRepository, deps ContentDeps) DestinationService {
	return &destinationService{
		destRepo: destRepo,
		deps:     deps.withDefaults(),
		now:      time.Now,
	}
}

var destinationMessages = travelMessages{
	coverMedia:   "Destination must have cover media before being published or highlighted.",
	priceOptions: "Destination must have at least one client price option before being published or highlighted.",
	dates:        "Destination must have departure and return dates before being published or highlighted.",
}

func destinationPrerequisites(req travelRequirements) PrerequisiteCheck {
	return func() error {
		return req.check(destinationMessages)
	}
}

func destinationRequirements(dest *models.DestinationTravel, priceOptions int) travelRequirements {
	return travelRequirements{
		coverMedia:   len(dest.CoverMedia),
		priceOptions: priceOptions,
		departure:    dest.DepartureDate,
		ret:          dest.ReturnDate,
	}
}

func (s *destinationService) CreateDestinationTravel(ctx context.Context, input models.CreateDestinationInput) (*Outcome[models.DestinationTravel], error) {
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

	description, err := s.deps.packText(input.Description)
	if err != nil {
		return nil, err
	}
	activities, err := s.deps.packText(input.Activities)
	if err != nil {
		return nil, err
	}

	dest := &models.DestinationTravel{
		TourTitle:          strings.TrimSpace(input.TourTitle),
		Location:           strings.TrimSpace(input.Location),
		MinimumPrice:       input.MinimumPrice,
		CoverMedia:         input.CoverMedia,
		DepartureDate:      input.DepartureDate,
		ReturnDate:         input.ReturnDate,
		Duration:           duration,
		Description:        description,
		Activities:         activities,
		ClientPriceOptions: options,
	}

	check := destinationPrerequisites(destinationRequirements(dest, len(options)))
	dest.ContentState, err = destinationWorkflow.Initial(input.Status, check, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.destRepo.Create(ctx, dest); err != nil {
		return nil, err
	}
	slog.Info("destination created", "id", dest.ID, "status", dest.Status)

	stored, err := s.GetDestinationTravel(ctx, dest.ID)
	if err != nil {
		return nil, err
	}

	message := "Destination saved as draft"
	if stored.Status == models.StatusPublished {
		message = "Destination published successfully"
	}
	return &Outcome[models.DestinationTravel]{Message: message, Item: stored}, nil
}

func (s *destinationService) EditDestinationTravel(ctx context.Context, id string, input models.EditDestinationInput) (*Outcome[models.DestinationTravel], error) {
	dest, err := s.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Destination travel not found")
	}

	if err := applyTravelEdit(&travelFields{
		title:         &dest.TourTitle,
		location:      &dest.Location,
		minimumPrice:  &dest.MinimumPrice,
		coverMedia:    &dest.CoverMedia,
		departureDate: &dest.DepartureDate,
		returnDate:    &dest.ReturnDate,
		duration:      &dest.Duration,
		description:   &dest.Description,
		activities:    &dest.Activities,
	}, input.EditTravelInput, s.deps); err != nil {
		return nil, err
	}

	changes, optionCount, err := planClientOptions(dest.ClientPriceOptions, input.PriceOptionsToUpsert, input.PriceOptionIDsToDelete,
		func(opt *models.ClientPriceOption) { opt.DestinationTravelID = &dest.ID })
	if err != nil {
		return nil, err
	}
	check := destinationPrerequisites(destinationRequirements(dest, optionCount))

	message := "Destination updated successfully"
	clearHighlights := false
	if input.Status != nil && *input.Status != dest.Status {
		t, err := destinationWorkflow.Apply(&dest.ContentState, *input.Status, check, s.now())
		if err != nil {
			return nil, err
		}
		clearHighlights = t.ClearHighlights
		if t.To == models.StatusPublished {
			message = "Destination published successfully"
		}
		s.deps.Metrics.RecordTransition(destinationWorkflow.Rules().Entity, string(t.To))
	} else if dest.Status.Live() {
		if err := check(); err != nil {
			return nil, err
		}
	}

	dest.ClientPriceOptions = nil
	if err := s.destRepo.SaveWithOptions(ctx, dest, changes, clearHighlights); err != nil {
		return nil, err
	}

	stored, err := s.GetDestinationTravel(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.DestinationTravel]{Message: message, Item: stored}, nil
}

func (s *destinationService) UpdateDestinationTravelStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.DestinationTravel], error) {
	dest, err := s.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Destination travel not found")
	}

	check := destinationPrerequisites(destinationRequirements(dest, len(dest.ClientPriceOptions)))
	t, err := destinationWorkflow.Apply(&dest.ContentState, status, check, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.destRepo.UpdateStatus(ctx, dest, dest.ID, t.ClearHighlights); err != nil {
		return nil, err
	}
	s.deps.Metrics.RecordTransition(destinationWorkflow.Rules().Entity, string(t.To))
	slog.Info("destination status changed", "id", id, "from", t.From, "to", t.To)

	stored, err := s.GetDestinationTravel(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.DestinationTravel]{Message: t.Message, Item: stored}, nil
}

func (s *destinationService) DeleteDestinationTravel(ctx context.Context, id string) (string, error) {
	if err := s.destRepo.Delete(ctx, id); err != nil {
		return "", translateNotFound(err, "Destination travel not found")
	}
	slog.Info("destination deleted", "id", id)
	return "Destination deleted successfully", nil
}

func (s *destinationService) GetDestinationTravel(ctx context.Context, id string) (*models.DestinationTravel, error) {
	dest, err := s.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Destination travel not found")
	}
	s.unpack(dest)
	return dest, nil
}

func (s *destinationService) GetHighlightedDestinations(ctx context.Context) ([]models.DestinationTravel, error) {
	return s.unpackAll(s.destRepo.ListHighlighted(ctx))
}

func (s *destinationService) GetAllPublishedDestinations(ctx context.Context) ([]models.DestinationTravel, error) {
	return s.unpackAll(s.destRepo.ListPublished(ctx))
}

func (s *destinationService) GetAllDestinationTravels(ctx context.Context, filter models.ContentFilter) (*models.Page[models.DestinationTravel], error) {
	paging, err := prepareContentFilter(&filter, s.now())
	if err != nil {
		return nil, err
	}

	dests, total, err := s.destRepo.List(ctx, filter, paging)
	if err != nil {
		return nil, err
	}
	for i := range dests {
		s.unpack(&dests[i])
	}
	return &models.Page[models.DestinationTravel]{Data: dests, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}

func (s *destinationService) SearchTourTitles(ctx context.Context, title string) ([]models.DestinationTravel, error) {
	if strings.TrimSpace(title) == "" {
		return []models.DestinationTravel{}, nil
	}
	return s.unpackAll(s.destRepo.SearchTitle(ctx, title, SearchLimit))
}

func (s *destinationService) unpack(dest *models.DestinationTravel) {
	dest.Description = s.deps.Compressor.Decompress(dest.Description)
	dest.Activities = s.deps.Compressor.Decompress(dest.Activities)
}

func (s *destinationService) unpackAll(dests []models.DestinationTravel, err error) ([]models.DestinationTravel, error) {
	if err != nil {
		return nil, err
	}
	for i := range dests {
		s.unpack(&dests[i])
	}
	return dests, nil
}
