package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"travel-gateway/models"
	"travel-gateway/repositories"

	"gorm.io/gorm"
)

type BlogTagService interface {
	CreateTag(ctx context.Context, input models.NamedInput) (*Outcome[models.BlogTag], error)
	GetTags(ctx context.Context) ([]models.BlogTag, error)
	EditTag(ctx context.Context, id string, input models.EditNamedInput) (*Outcome[models.BlogTag], error)
	DeleteTag(ctx context.Context, id string) (string, error)
}

type blogTagService struct {
	tagRepo  repositories.BlogTagRepository
	blogRepo repositories.BlogRepository
}

func NewBlogTagService(tagRepo repositories.BlogTagRepository, blogRepo repositories.BlogRepository) BlogTagService {
	return &blogTagService{tagRepo: tagRepo, blogRepo: blogRepo}
}

func (s *blogTagService) CreateTag(ctx context.Context, input models.NamedInput) (*Outcome[models.BlogTag], error) {
	name := strings.TrimSpace(input.Name)
	if err := s.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	tag := &models.BlogTag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return &Outcome[models.BlogTag]{Message: "Blog Tag created successfully", Item: tag}, nil
}

func (s *blogTagService) GetTags(ctx context.Context) ([]models.BlogTag, error) {
	return s.tagRepo.GetAll(ctx)
}

func (s *blogTagService) EditTag(ctx context.Context, id string, input models.EditNamedInput) (*Outcome[models.BlogTag], error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Blog Tag not found")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := s.ensureUniqueName(ctx, name, tag.ID); err != nil {
			return nil, err
		}
		tag.Name = name
	}
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return &Outcome[models.BlogTag]{Message: "Blog Tag updated successfully", Item: tag}, nil
}

func (s *blogTagService) DeleteTag(ctx context.Context, id string) (string, error) {
	if _, err := s.tagRepo.GetByID(ctx, id); err != nil {
		return "", translateNotFound(err, "Blog Tag not found")
	}

	inUse, err := s.blogRepo.CountByTag(ctx, id)
	if err != nil {
		return "", err
	}
	if inUse > 0 {
		return "", models.BadRequest("Cannot delete tag with blogs assighned to it")
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return "", translateNotFound(err, "Blog Tag not found")
	}
	slog.Info("blog tag deleted", "id", id)
	return "Blog Tag deleted successfully", nil
}

func (s *blogTagService) ensureUniqueName(ctx context.Context, name, selfID string) error {
	existing, err := s.tagRepo.GetByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return models.Conflictf("Blog Tag %q already exists.", name)
	}
	return nil
}

type TourTypeService interface {
	CreateTourType(ctx context.Context, input models.NamedInput) (*Outcome[models.TourType], error)
	GetTourTypes(ctx context.Context) ([]models.TourType, error)
	EditTourType(ctx context.Context, id string, input models.EditNamedInput) (*Outcome[models.TourType], error)
	DeleteTourType(ctx context.Context, id string) (string, error)
}

type tourTypeService struct {
	typeRepo repositories.TourTypeRepository
}

func NewTourTypeService(typeRepo repositories.TourTypeRepository) TourTypeService {
	return &tourTypeService{typeRepo: typeRepo}
}

func (s *tourTypeService) CreateTourType(ctx context.Context, input models.NamedInput) (*Outcome[models.TourType], error) {
	name := strings.TrimSpace(input.Name)
	if err := s.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	tourType := &models.TourType{Name: name, Description: input.Description}
	if err := s.typeRepo.Create(ctx, tourType); err != nil {
		return nil, err
	}
	return &Outcome[models.TourType]{Message: "Tour type created successfully", Item: tourType}, nil
}

func (s *tourTypeService) GetTourTypes(ctx context.Context) ([]models.TourType, error) {
	return s.typeRepo.GetAll(ctx)
}

func (s *tourTypeService) EditTourType(ctx context.Context, id string, input models.EditNamedInput) (*Outcome[models.TourType], error) {
	tourType, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Tour type not found")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := s.ensureUniqueName(ctx, name, tourType.ID); err != nil {
			return nil, err
		}
		tourType.Name = name
	}
	if input.Description != nil {
		tourType.Description = *input.Description
	}
	if err := s.typeRepo.Update(ctx, tourType); err != nil {
		return nil, err
	}
	return &Outcome[models.TourType]{Message: "Tour type updated successfully", Item: tourType}, nil
}

func (s *tourTypeService) DeleteTourType(ctx context.Context, id string) (string, error) {
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		return "", translateNotFound(err, "Tour type not found")
	}
	slog.Info("tour type deleted", "id", id)
	return "Tour type deleted successfully", nil
}

func (s *tourTypeService) ensureUniqueName(ctx context.Context, name, selfID string) error {
	existing, err := s.typeRepo.GetByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return models.Conflictf("Tour type %q already exists.", name)
	}
	return nil
}
