package services

import (
	"context"
	"strings"

	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/repositories"
)

// PricingService manages the standalone price options. Options that belong
// to a tour package, destination or visa checklist are only changed through
// their parent's edit, which keeps a live item's options intact.
type PricingService interface {
	CreateClientPriceOption(ctx context.Context, input models.PriceOptionInput) (*Outcome[models.ClientPriceOption], error)
	EditClientPriceOption(ctx context.Context, id string, input models.EditPriceOptionInput) (*Outcome[models.ClientPriceOption], error)
	DeleteClientPriceOption(ctx context.Context, id string) (string, error)
	GetClientPriceOptions(ctx context.Context, query models.PageQuery) (*models.Page[models.ClientPriceOption], error)

	CreateVisaPriceOption(ctx context.Context, input models.VisaPriceOptionInput) (*Outcome[models.VisaPriceOption], error)
	EditVisaPriceOption(ctx context.Context, id string, input models.EditVisaPriceOptionInput) (*Outcome[models.VisaPriceOption], error)
	DeleteVisaPriceOption(ctx context.Context, id string) (string, error)
	GetVisaPriceOptions(ctx context.Context, query models.PageQuery) (*models.Page[models.VisaPriceOption], error)
}

type pricingService struct {
	optionRepo repositories.PriceOptionRepository
}

func NewPricingService(optionRepo repositories.PriceOptionRepository) PricingService {
	return &pricingService{optionRepo: optionRepo}
}

func standaloneClientOption(opt *models.ClientPriceOption) error {
	switch {
	case opt.TourPackageID != nil:
		return models.BadRequest("Price option belongs to a tour package. Edit it through the tour package.")
	case opt.DestinationTravelID != nil:
		return models.BadRequest("Price option belongs to a destination. Edit it through the destination.")
	}
	return nil
}

func standaloneVisaOption(opt *models.VisaPriceOption) error {
	if opt.VisaChecklistID != nil {
		return models.BadRequest("Price option belongs to a visa checklist. Edit it through the visa checklist.")
	}
	return nil
}

func (s *pricingService) ensureClientName(ctx context.Context, name string, owner repositories.ClientOwner, exceptID string) error {
	taken, err := s.optionRepo.ClientNameTaken(ctx, name, owner, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return models.Conflictf("Client category name %q already exists.", name)
	}
	return nil
}

func (s *pricingService) ensureVisaDuration(ctx context.Context, days int, checklistID *string, exceptID string) error {
	taken, err := s.optionRepo.VisaDurationTaken(ctx, days, checklistID, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return models.Conflictf("Visa duration of %d days already exists.", days)
	}
	return nil
}

func (s *pricingService) CreateClientPriceOption(ctx context.Context, input models.PriceOptionInput) (*Outcome[models.ClientPriceOption], error) {
	opt := &models.ClientPriceOption{CategoryName: strings.TrimSpace(input.CategoryName), Price: input.Price}
	if err := s.ensureClientName(ctx, opt.CategoryName, repositories.ClientOwnerOf(opt), ""); err != nil {
		return nil, err
	}
	if err := s.optionRepo.CreateClient(ctx, opt); err != nil {
		return nil, err
	}
	return &Outcome[models.ClientPriceOption]{Message: "Client price option created successfully", Item: opt}, nil
}

func (s *pricingService) EditClientPriceOption(ctx context.Context, id string, input models.EditPriceOptionInput) (*Outcome[models.ClientPriceOption], error) {
	opt, err := s.optionRepo.GetClient(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Client price option not found")
	}
	if err := standaloneClientOption(opt); err != nil {
		return nil, err
	}

	if input.CategoryName != nil {
		name := strings.TrimSpace(*input.CategoryName)
		if err := s.ensureClientName(ctx, name, repositories.ClientOwnerOf(opt), opt.ID); err != nil {
			return nil, err
		}
		opt.CategoryName = name
	}
	if input.Price != nil {
		opt.Price = *input.Price
	}
	if err := s.optionRepo.SaveClient(ctx, opt); err != nil {
		return nil, err
	}
	return &Outcome[models.ClientPriceOption]{Message: "Client price option updated successfully", Item: opt}, nil
}

func (s *pricingService) DeleteClientPriceOption(ctx context.Context, id string) (string, error) {
	opt, err := s.optionRepo.GetClient(ctx, id)
	if err != nil {
		return "", translateNotFound(err, "Client price option not found")
	}
	if err := standaloneClientOption(opt); err != nil {
		return "", err
	}
	if err := s.optionRepo.DeleteClient(ctx, id); err != nil {
		return "", translateNotFound(err, "Client price option not found")
	}
	return "Client price option deleted successfully", nil
}

func (s *pricingService) GetClientPriceOptions(ctx context.Context, query models.PageQuery) (*models.Page[models.ClientPriceOption], error) {
	paging := helper.NormalizePage(query.Page, query.PageSize)
	options, total, err := s.optionRepo.ListClient(ctx, paging)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.ClientPriceOption]{Data: options, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}

func (s *pricingService) CreateVisaPriceOption(ctx context.Context, input models.VisaPriceOptionInput) (*Outcome[models.VisaPriceOption], error) {
	if err := s.ensureVisaDuration(ctx, input.DurationInDays, nil, ""); err != nil {
		return nil, err
	}
	opt := &models.VisaPriceOption{DurationInDays: input.DurationInDays, Price: input.Price}
	if err := s.optionRepo.CreateVisa(ctx, opt); err != nil {
		return nil, err
	}
	return &Outcome[models.VisaPriceOption]{Message: "Visa price option created successfully", Item: opt}, nil
}

func (s *pricingService) EditVisaPriceOption(ctx context.Context, id string, input models.EditVisaPriceOptionInput) (*Outcome[models.VisaPriceOption], error) {
	opt, err := s.optionRepo.GetVisa(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Visa price option not found")
	}
	if err := standaloneVisaOption(opt); err != nil {
		return nil, err
	}

	if input.DurationInDays != nil {
		if err := s.ensureVisaDuration(ctx, *input.DurationInDays, opt.VisaChecklistID, opt.ID); err != nil {
			return nil, err
		}
		opt.DurationInDays = *input.DurationInDays
	}
	if input.Price != nil {
		opt.Price = *input.Price
	}
	if err := s.optionRepo.SaveVisa(ctx, opt); err != nil {
		return nil, err
	}
	return &Outcome[models.VisaPriceOption]{Message: "Visa price option updated successfully", Item: opt}, nil
}

func (s *pricingService) DeleteVisaPriceOption(ctx context.Context, id string) (string, error) {
	opt, err := s.optionRepo.GetVisa(ctx, id)
	if err != nil {
		return "", translateNotFound(err, "Visa price option not found")
	}
	if err := standaloneVisaOption(opt); err != nil {
		return "", err
	}
	if err := s.optionRepo.DeleteVisa(ctx, id); err != nil {
		return "", translateNotFound(err, "Visa price option not found")
	}
	return "Visa price option deleted successfully", nil
}

func (s *pricingService) GetVisaPriceOptions(ctx context.Context, query models.PageQuery) (*models.Page[models.VisaPriceOption], error) {
	paging := helper.NormalizePage(query.Page, query.PageSize)
	options, total, err := s.optionRepo.ListVisa(ctx, paging)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.VisaPriceOption]{Data: options, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}
