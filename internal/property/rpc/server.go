// Package rpc serves the Property and PropertyTrace resources over gRPC.
// The handlers mirror the REST contract; outcomes map onto the RPC status
// taxonomy (InvalidArgument, NotFound, AlreadyExists, Internal).
package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"github.com/RockerInt/Properties/internal/propertiespb"
	"github.com/RockerInt/Properties/internal/property/repository"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PropertyRepo defines the repository operations used by PropertyServer.
type PropertyRepo interface {
	List(ctx context.Context, p *params.PropertyParams) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// PropertyServer implements propertiespb.PropertyServiceServer.
type PropertyServer struct {
	repo   PropertyRepo
	logger *slog.Logger
}

func NewPropertyServer(repo PropertyRepo, logger *slog.Logger) *PropertyServer {
	return &PropertyServer{repo: repo, logger: logger}
}

func (s *PropertyServer) GetProperties(ctx context.Context, req *propertiespb.GetPropertiesRequest) (*propertiespb.GetPropertiesResponse, error) {
	p := filterToParams(req.Filter)
	if p != nil {
		if !p.ValidYearRange() {
			return nil, status.Error(codes.InvalidArgument,
				"invalid year range: maxYear must be greater than minYear")
		}
		if !p.ValidPriceRange() {
			return nil, status.Error(codes.InvalidArgument,
				"invalid price range: maxPrice must be greater than minPrice")
		}
	}

	properties, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, s.internal("list properties", err)
	}
	if len(properties) == 0 {
		return nil, status.Error(codes.NotFound, "No results found")
	}

	resp := &propertiespb.GetPropertiesResponse{}
	for i := range properties {
		resp.Properties = append(resp.Properties, toWireProperty(&properties[i]))
	}
	return resp, nil
}

func (s *PropertyServer) GetProperty(ctx context.Context, req *propertiespb.GetPropertyRequest) (*propertiespb.PropertyResponse, error) {
	if _, err := uuid.Parse(req.Id); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id format")
	}

	property, err := s.repo.GetByID(ctx, req.Id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "The property with id %s do not exist", req.Id)
	}
	if err != nil {
		return nil, s.internal("get property", err)
	}
	return &propertiespb.PropertyResponse{Property: toWireProperty(property)}, nil
}

func (s *PropertyServer) CreateProperty(ctx context.Context, req *propertiespb.PropertyRequest) (*propertiespb.PropertyResponse, error) {
	property, err := s.bind(req)
	if err != nil {
		return nil, err
	}
	if property.IdProperty == "" {
		property.IdProperty = uuid.NewString()
	} else if _, err := uuid.Parse(property.IdProperty); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id format")
	}

	err = s.repo.Create(ctx, property)
	if errors.Is(err, repository.ErrDuplicate) {
		exists, probeErr := s.repo.Exists(ctx, property.IdProperty)
		if probeErr == nil && exists {
			return nil, status.Errorf(codes.AlreadyExists,
				"The property with id %s already exist", property.IdProperty)
		}
	}
	if err != nil {
		return nil, s.internal("create property", err)
	}
	return &propertiespb.PropertyResponse{Property: toWireProperty(property)}, nil
}

func (s *PropertyServer) UpdateProperty(ctx context.Context, req *propertiespb.PropertyRequest) (*propertiespb.PropertyResponse, error) {
	property, err := s.bind(req)
	if err != nil {
		return nil, err
	}
	if property.IdProperty == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required for update")
	}

	rows, err := s.repo.Update(ctx, property)
	if err != nil {
		return nil, s.internal("update property", err)
	}
	if rows == 0 {
		exists, probeErr := s.repo.Exists(ctx, property.IdProperty)
		if probeErr == nil && !exists {
			return nil, status.Errorf(codes.NotFound,
				"The property with id %s do not exist", property.IdProperty)
		}
		return nil, s.internal("update property",
			fmt.Errorf("update of property %s affected no rows", property.IdProperty))
	}
	return &propertiespb.PropertyResponse{Property: toWireProperty(property)}, nil
}

func (s *PropertyServer) DeleteProperty(ctx context.Context, req *propertiespb.DeletePropertyRequest) (*propertiespb.DeleteResponse, error) {
	if _, err := uuid.Parse(req.Id); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id format")
	}

	_, err := s.repo.GetByID(ctx, req.Id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "The property with id %s do not exist", req.Id)
	}
	if err != nil {
		return nil, s.internal("delete property", err)
	}

	rows, err := s.repo.Delete(ctx, req.Id)
	if err != nil {
		return nil, s.internal("delete property", err)
	}
	// Success false is the no-op case: the row was already gone.
	return &propertiespb.DeleteResponse{Success: rows > 0}, nil
}

func (s *PropertyServer) bind(req *propertiespb.PropertyRequest) (*models.Property, error) {
	if req.Property == nil {
		return nil, status.Error(codes.InvalidArgument, "property is required")
	}
	property := fromWireProperty(req.Property)
	if validationErrors := middleware.ValidateRequest(*property); validationErrors != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid property: %s %s",
			validationErrors[0].Field, validationErrors[0].Message)
	}
	return property, nil
}

func (s *PropertyServer) internal(op string, err error) error {
	s.logger.Error("an error has occurred", "op", op, "error", err)
	return status.Error(codes.Internal, "An error has occurred, contact the administrator!")
}

// filterToParams maps the wire filter onto the parameter object. A nil
// filter means no filtering at all, not default filtering.
func filterToParams(f *propertiespb.PropertyFilter) *params.PropertyParams {
	if f == nil {
		return nil
	}
	p := &params.PropertyParams{
		Paging:     f.Paging,
		PageNumber: f.PageNumber,
		PageSize:   f.PageSize,
		MinYear:    f.MinYear,
		MaxYear:    f.MaxYear,
		MinPrice:   f.MinPrice,
		MaxPrice:   f.MaxPrice,
	}
	p.Normalize()
	return p
}
