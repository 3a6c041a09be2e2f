// Package service is the gateway's orchestration layer between handlers
// and the property service clients.
package service

import (
	"context"
	"log/slog"

	"github.com/RockerInt/Properties/internal/gateway/client"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
)

// PropertiesService fronts the property and property image clients. It
// owns no business rules of its own; the property service stays the
// single authority on validation and conflict outcomes.
type PropertiesService struct {
	properties client.PropertyClient
	images     client.PropertyImageClient
	logger     *slog.Logger
}

func New(properties client.PropertyClient, images client.PropertyImageClient, logger *slog.Logger) *PropertiesService {
	return &PropertiesService{properties: properties, images: images, logger: logger}
}

func (s *PropertiesService) GetProperties(ctx context.Context, p *params.PropertyParams) ([]models.PropertyComplete, error) {
	return s.properties.List(ctx, p)
}

func (s *PropertiesService) GetProperty(ctx context.Context, id string) (*models.PropertyComplete, error) {
	return s.properties.Get(ctx, id)
}

func (s *PropertiesService) CreateProperty(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error) {
	created, err := s.properties.Create(ctx, property)
	if err != nil {
		return nil, err
	}
	s.logger.Info("property created", "id", created.IdProperty)
	return created, nil
}

func (s *PropertiesService) UpdateProperty(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error) {
	return s.properties.Update(ctx, property)
}

func (s *PropertiesService) DeleteProperty(ctx context.Context, id string) (bool, error) {
	removed, err := s.properties.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info("property deleted", "id", id)
	}
	return removed, nil
}

func (s *PropertiesService) GetPropertyImages(ctx context.Context) ([]models.PropertyImageComplete, error) {
	return s.images.List(ctx)
}

func (s *PropertiesService) GetPropertyImage(ctx context.Context, id string) (*models.PropertyImageComplete, error) {
	return s.images.Get(ctx, id)
}

func (s *PropertiesService) CreatePropertyImage(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error) {
	return s.images.Create(ctx, image)
}

func (s *PropertiesService) UpdatePropertyImage(ctx context.Context, image *models.PropertyImage) (*models.PropertyImage, error) {
	return s.images.Update(ctx, image)
}

func (s *PropertiesService) DeletePropertyImage(ctx context.Context, id string) (bool, error) {
	return s.images.Delete(ctx, id)
}
