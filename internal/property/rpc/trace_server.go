package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RockerInt/Properties/internal/middleware"
	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/propertiespb"
	"github.com/RockerInt/Properties/internal/property/repository"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TraceRepo defines the repository operations used by PropertyTraceServer.
type TraceRepo interface {
	List(ctx context.Context) ([]models.PropertyTrace, error)
	GetByID(ctx context.Context, id string) (*models.PropertyTrace, error)
	Create(ctx context.Context, trace *models.PropertyTrace) error
	Update(ctx context.Context, trace *models.PropertyTrace) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// PropertyTraceServer implements propertiespb.PropertyTraceServiceServer.
type PropertyTraceServer struct {
	repo   TraceRepo
	logger *slog.Logger
}

func NewPropertyTraceServer(repo TraceRepo, logger *slog.Logger) *PropertyTraceServer {
	return &PropertyTraceServer{repo: repo, logger: logger}
}

func (s *PropertyTraceServer) GetPropertyTraces(ctx context.Context, _ *propertiespb.GetPropertyTracesRequest) (*propertiespb.GetPropertyTracesResponse, error) {
	traces, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.internal("list property traces", err)
	}
	if len(traces) == 0 {
		return nil, status.Error(codes.NotFound, "No results found")
	}

	resp := &propertiespb.GetPropertyTracesResponse{}
	for i := range traces {
		resp.Traces = append(resp.Traces, toWireTrace(&traces[i]))
	}
	return resp, nil
}

func (s *PropertyTraceServer) GetPropertyTrace(ctx context.Context, req *propertiespb.GetPropertyTraceRequest) (*propertiespb.PropertyTraceResponse, error) {
	if _, err := uuid.Parse(req.Id); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id format")
	}

	trace, err := s.repo.GetByID(ctx, req.Id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "The property trace with id %s do not exist", req.Id)
	}
	if err != nil {
		return nil, s.internal("get property trace", err)
	}
	return &propertiespb.PropertyTraceResponse{Trace: toWireTrace(trace)}, nil
}

func (s *PropertyTraceServer) CreatePropertyTrace(ctx context.Context, req *propertiespb.PropertyTraceRequest) (*propertiespb.PropertyTraceResponse, error) {
	trace, err := s.bind(req)
	if err != nil {
		return nil, err
	}
	if trace.IdPropertyTrace == "" {
		trace.IdPropertyTrace = uuid.NewString()
	} else if _, err := uuid.Parse(trace.IdPropertyTrace); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id format")
	}

	err = s.repo.Create(ctx, trace)
	if errors.Is(err, repository.ErrDuplicate) {
		exists, probeErr := s.repo.Exists(ctx, trace.IdPropertyTrace)
		if probeErr == nil && exists {
			return nil, status.Errorf(codes.AlreadyExists,
				"The property trace with id %s already exist", trace.IdPropertyTrace)
		}
	}
	if err != nil {
		return nil, s.internal("create property trace", err)
	}
	return &propertiespb.PropertyTraceResponse{Trace: toWireTrace(trace)}, nil
}

func (s *PropertyTraceServer) UpdatePropertyTrace(ctx context.Context, req *propertiespb.PropertyTraceRequest) (*propertiespb.PropertyTraceResponse, error) {
	trace, err := s.bind(req)
	if err != nil {
		return nil, err
	}
	if trace.IdPropertyTrace == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required for update")
	}

	rows, err := s.repo.Update(ctx, trace)
	if err != nil {
		return nil, s.internal("update property trace", err)
	}
	if rows == 0 {
		exists, probeErr := s.repo.Exists(ctx, trace.IdPropertyTrace)
		if probeErr == nil && !exists {
			return nil, status.Errorf(codes.NotFound,
				"The property trace with id %s do not exist", trace.IdPropertyTrace)
		}
		return nil, s.internal("update property trace",
			fmt.Errorf("update of property trace %s affected no rows", trace.IdPropertyTrace))
	}
	return &propertiespb.PropertyTraceResponse{Trace: toWireTrace(trace)}, nil
}

func (s *PropertyTraceServer) DeletePropertyTrace(ctx context.Context, req *propertiespb.DeletePropertyTraceRequest) (*propertiespb.DeleteResponse, error) {
	if _, err := uuid.Parse(req.Id); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id format")
	}

	_, err := s.repo.GetByID(ctx, req.Id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "The property trace with id %s do not exist", req.Id)
	}
	if err != nil {
		return nil, s.internal("delete property trace", err)
	}

	rows, err := s.repo.Delete(ctx, req.Id)
	if err != nil {
		return nil, s.internal("delete property trace", err)
	}
	return &propertiespb.DeleteResponse{Success: rows > 0}, nil
}

func (s *PropertyTraceServer) bind(req *propertiespb.PropertyTraceRequest) (*models.PropertyTrace, error) {
	if req.Trace == nil {
		return nil, status.Error(codes.InvalidArgument, "trace is required")
	}
	trace := fromWireTrace(req.Trace)
	if validationErrors := middleware.ValidateRequest(*trace); validationErrors != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid property trace: %s %s",
			validationErrors[0].Field, validationErrors[0].Message)
	}
	return trace, nil
}

func (s *PropertyTraceServer) internal(op string, err error) error {
	s.logger.Error("an error has occurred", "op", op, "error", err)
	return status.Error(codes.Internal, "An error has occurred, contact the administrator!")
}
