package services

import (
	"context"
	"log/slog"
	"strings"

	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/repositories"
)

type SubscriberService interface {
	SubscribeToUpdates(ctx context.Context, input models.SubscribeInput) (string, error)
	GetAllSubscribers(ctx context.Context, query models.PageQuery) (*models.Page[models.EmailSubscriber], error)
	SearchSubscribers(ctx context.Context, term string) ([]models.EmailSubscriber, error)
}

type subscriberService struct {
	subscriberRepo repositories.SubscriberRepository
}

func NewSubscriberService(subscriberRepo repositories.SubscriberRepository) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo}
}

func (s *subscriberService) SubscribeToUpdates(ctx context.Context, input models.SubscribeInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.subscriberRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.Conflict("This email is already subscribed.")
	}

	if err := s.subscriberRepo.Create(ctx, &models.EmailSubscriber{Email: email}); err != nil {
		return "", err
	}
	slog.Info("email subscribed", "email", email)
	return "Thank you for subscribing! Your email has been added.", nil
}

func (s *subscriberService) GetAllSubscribers(ctx context.Context, query models.PageQuery) (*models.Page[models.EmailSubscriber], error) {
	paging := helper.NormalizePage(query.Page, query.PageSize)
	subs, total, err := s.subscriberRepo.List(ctx, paging)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.EmailSubscriber]{Data: subs, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}

func (s *subscriberService) SearchSubscribers(ctx context.Context, term string) ([]models.EmailSubscriber, error) {
	if strings.TrimSpace(term) == "" {
		return []models.EmailSubscriber{}, nil
	}
	return s.subscriberRepo.Search(ctx, term, SearchLimit)
}
