package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-gateway/models"
	"travel-gateway/repositories"
)

type VisaChecklistService interface {
	CreateVisaChecklist(ctx context.Context, input models.CreateVisaChecklistInput) (*Outcome[models.VisaChecklist], error)
	EditVisaChecklist(ctx context.Context, id string, input models.EditVisaChecklistInput) (*Outcome[models.VisaChecklist], error)
	ChangeVisaChecklistStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.VisaChecklist], error)
	DeleteVisaChecklist(ctx context.Context, id string) (string, error)
	GetVisaChecklist(ctx context.Context, id string) (*models.VisaChecklist, error)
	GetHighlightedVisaChecklist(ctx context.Context) (*models.VisaChecklist, error)
	GetAllPublishedVisaChecklists(ctx context.Context) ([]models.VisaChecklist, error)
	GetAllVisaChecklists(ctx context.Context, filter models.ContentFilter) (*models.Page[models.VisaChecklist], error)
	SearchVisaChecklist(ctx context.Context, term string) ([]models.VisaChecklist, error)
}

type visaChecklistService struct {
	visaRepo repositories.VisaChecklistRepository
	deps     ContentDeps
	now      func() time.Time
}

func NewVisaChecklistService(visaRepo repositories.VisaChecklistRepository, deps ContentDeps) VisaChecklistService {
	return &visaChecklistService{
		visaRepo: visaRepo,
		deps:     deps.withDefaults(),
		now:      time.Now,
	}
}

func visaChecklistPrerequisites(images, priceOptions int) PrerequisiteCheck {
	return func() error {
		if images == 0 {
			return models.BadRequest("Images are required to publish a visa checklist")
		}
		if priceOptions == 0 {
			return models.BadRequest("At least one visa duration price option is required to publish.")
		}
		return nil
	}
}

func (s *visaChecklistService) CreateVisaChecklist(ctx context.Context, input models.CreateVisaChecklistInput) (*Outcome[models.VisaChecklist], error) {
	options := make([]models.VisaPriceOption, 0, len(input.VisaPriceOptions))
	seen := map[int]bool{}
	for _, in := range input.VisaPriceOptions {
		if seen[in.DurationInDays] {
			return nil, models.Conflictf("Visa duration of %d days already exists.", in.DurationInDays)
		}
		seen[in.DurationInDays] = true
		options = append(options, models.VisaPriceOption{DurationInDays: in.DurationInDays, Price: in.Price})
	}

	state, err := visaChecklistWorkflow.Initial(input.Status, visaChecklistPrerequisites(len(input.Images), len(options)), s.now())
	if err != nil {
		return nil, err
	}

	description, err := s.deps.packText(input.Description)
	if err != nil {
		return nil, err
	}

	checklist := &models.VisaChecklist{
		Country:          strings.TrimSpace(input.Country),
		Location:         strings.TrimSpace(input.Location),
		Description:      description,
		Images:           input.Images,
		VisaPriceOptions: options,
		ContentState:     state,
	}
	if err := s.visaRepo.Create(ctx, checklist); err != nil {
		return nil, err
	}
	slog.Info("visa checklist created", "id", checklist.ID, "status", checklist.Status)

	stored, err := s.GetVisaChecklist(ctx, checklist.ID)
	if err != nil {
		return nil, err
	}

	message := "Visa Checklist saved as draft"
	if stored.Status == models.StatusPublished {
		message = "Visa Checklist published successfully"
	}
	return &Outcome[models.VisaChecklist]{Message: message, Item: stored}, nil
}

// EditVisaChecklist accepts an archived checklist only when the same edit
// moves it out of ARCHIVED.
func (s *visaChecklistService) EditVisaChecklist(ctx context.Context, id string, input models.EditVisaChecklistInput) (*Outcome[models.VisaChecklist], error) {
	checklist, err := s.visaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Visa Checklist not found")
	}
	if checklist.Status == models.StatusArchived && (input.Status == nil || *input.Status == models.StatusArchived) {
		return nil, models.BadRequest("Cannot edit an archived visa checklist (must unarchive first)")
	}

	if input.Country != nil {
		checklist.Country = strings.TrimSpace(*input.Country)
	}
	if input.Location != nil {
		checklist.Location = strings.TrimSpace(*input.Location)
	}
	if input.Images != nil {
		checklist.Images = input.Images
	}
	if input.Description != nil {
		description, err := s.deps.packText(*input.Description)
		if err != nil {
			return nil, err
		}
		checklist.Description = description
	}

	changes, optionCount, err := planVisaOptions(checklist.VisaPriceOptions, input.VisaPriceOptionsToUpsert, input.DurationOptionIDsToDelete, checklist.ID)
	if err != nil {
		return nil, err
	}
	check := visaChecklistPrerequisites(len(checklist.Images), optionCount)

	message := "Visa Checklist updated successfully"
	clearHighlights := false
	if input.Status != nil && *input.Status != checklist.Status {
		t, err := visaChecklistWorkflow.Apply(&checklist.ContentState, *input.Status, check, s.now())
		if err != nil {
			return nil, err
		}
		clearHighlights = t.ClearHighlights
		if t.To == models.StatusPublished {
			message = "Visa Checklist published successfully"
		}
		s.deps.Metrics.RecordTransition(visaChecklistWorkflow.Rules().Entity, string(t.To))
	} else if checklist.Status.Live() {
		if err := check(); err != nil {
			return nil, err
		}
	}

	checklist.VisaPriceOptions = nil
	if err := s.visaRepo.SaveWithOptions(ctx, checklist, changes, clearHighlights); err != nil {
		return nil, err
	}

	stored, err := s.GetVisaChecklist(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.VisaChecklist]{Message: message, Item: stored}, nil
}

// planVisaOptions is the visa counterpart of planClientOptions. Durations
// must stay unique within the checklist.
func planVisaOptions(
	existing []models.VisaPriceOption,
	upserts []models.UpsertVisaPriceOptionInput,
	deleteIDs []string,
	checklistID string,
) (repositories.OptionChanges[models.VisaPriceOption], int, error) {
	var changes repositories.OptionChanges[models.VisaPriceOption]

	durations := make(map[string]int, len(existing))
	for _, opt := range existing {
		durations[opt.ID] = opt.DurationInDays
	}
	deleted := map[string]bool{}
	for _, id := range deleteIDs {
		if _, ok := durations[id]; ok && !deleted[id] {
			deleted[id] = true
			changes.Delete = append(changes.Delete, id)
		}
	}

	for _, in := range upserts {
		if in.ID != nil {
			if _, ok := durations[*in.ID]; ok {
				if deleted[*in.ID] {
					continue
				}
				for _, current := range existing {
					if current.ID == *in.ID {
						current.DurationInDays = in.DurationInDays
						current.Price = in.Price
						changes.Update = append(changes.Update, current)
						durations[current.ID] = in.DurationInDays
						break
					}
				}
				continue
			}
		}
		owner := checklistID
		changes.Create = append(changes.Create, models.VisaPriceOption{
			DurationInDays:  in.DurationInDays,
			Price:           in.Price,
			VisaChecklistID: &owner,
		})
	}

	final := make([]int, 0, len(existing)+len(changes.Create))
	for _, opt := range existing {
		if !deleted[opt.ID] {
			final = append(final, durations[opt.ID])
		}
	}
	for _, opt := range changes.Create {
		final = append(final, opt.DurationInDays)
	}

	seen := map[int]bool{}
	for _, days := range final {
		if seen[days] {
			return changes, 0, models.Conflictf("Visa duration of %d days already exists.", days)
		}
		seen[days] = true
	}
	return changes, len(final), nil
}

func (s *visaChecklistService) ChangeVisaChecklistStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.VisaChecklist], error) {
	checklist, err := s.visaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Visa Checklist not found")
	}

	check := visaChecklistPrerequisites(len(checklist.Images), len(checklist.VisaPriceOptions))
	t, err := visaChecklistWorkflow.Apply(&checklist.ContentState, status, check, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.visaRepo.UpdateStatus(ctx, checklist, checklist.ID, t.ClearHighlights); err != nil {
		return nil, err
	}
	s.deps.Metrics.RecordTransition(visaChecklistWorkflow.Rules().Entity, string(t.To))
	slog.Info("visa checklist status changed", "id", id, "from", t.From, "to", t.To)

	stored, err := s.GetVisaChecklist(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.VisaChecklist]{Message: t.Message, Item: stored}, nil
}

func (s *visaChecklistService) DeleteVisaChecklist(ctx context.Context, id string) (string, error) {
	if err := s.visaRepo.Delete(ctx, id); err != nil {
		return "", translateNotFound(err, "Visa Checklist not found")
	}
	slog.Info("visa checklist deleted", "id", id)
	return "Visa Checklist deleted successfully", nil
}

func (s *visaChecklistService) GetVisaChecklist(ctx context.Context, id string) (*models.VisaChecklist, error) {
	checklist, err := s.visaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Visa Checklist not found")
	}
	s.unpack(checklist)
	return checklist, nil
}

func (s *visaChecklistService) GetHighlightedVisaChecklist(ctx context.Context) (*models.VisaChecklist, error) {
	checklist, err := s.visaRepo.FirstHighlighted(ctx)
	if err != nil || checklist == nil {
		return nil, err
	}
	s.unpack(checklist)
	return checklist, nil
}

func (s *visaChecklistService) GetAllPublishedVisaChecklists(ctx context.Context) ([]models.VisaChecklist, error) {
	return s.unpackAll(s.visaRepo.ListPublished(ctx))
}

func (s *visaChecklistService) GetAllVisaChecklists(ctx context.Context, filter models.ContentFilter) (*models.Page[models.VisaChecklist], error) {
	paging, err := prepareContentFilter(&filter, s.now())
	if err != nil {
		return nil, err
	}

	checklists, total, err := s.visaRepo.List(ctx, filter, paging)
	if err != nil {
		return nil, err
	}
	for i := range checklists {
		s.unpack(&checklists[i])
	}
	return &models.Page[models.VisaChecklist]{Data: checklists, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}

// SearchVisaChecklist matches term against country or location.
func (s *visaChecklistService) SearchVisaChecklist(ctx context.Context, term string) ([]models.VisaChecklist, error) {
	if strings.TrimSpace(term) == "" {
		return []models.VisaChecklist{}, nil
	}
	return s.unpackAll(s.visaRepo.SearchTitle(ctx, term, SearchLimit))
}

func (s *visaChecklistService) unpack(checklist *models.VisaChecklist) {
	checklist.Description = s.deps.Compressor.Decompress(checklist.Description)
}

func (s *visaChecklistService) unpackAll(checklists []models.VisaChecklist, err error) ([]models.VisaChecklist, error) {
	if err != nil {
		return nil, err
	}
	for i := range checklists {
		s.unpack(&checklists[i])
	}
	return checklists, nil
}
