package service

import (
	"context"
	"errors"
	"fmt"

	"pathway.app/server/internal/model"
	"pathway.app/server/internal/store"
)

type ProviderService interface {
	List(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error)
	GetByUser(ctx context.Context, userID int64) (*model.Provider, error)
}

type providerService struct {
	providers store.ProviderStore
}

func NewProviderService(providers store.ProviderStore) ProviderService {
	return &providerService{providers: providers}
}

func (s *providerService) List(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error) {
	if serviceType != nil && !serviceType.Valid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, *serviceType)
	}
	out, err := s.providers.List(ctx, serviceType)
	if err != nil {
		return nil, storeErr(fmt.Errorf("listing providers: %w", err))
	}
	return out, nil
}

func (s *providerService) GetByUser(ctx context.Context, userID int64) (*model.Provider, error) {
	p, err := s.providers.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(fmt.Errorf("loading provider profile: %w", err))
	}
	return p, nil
}
