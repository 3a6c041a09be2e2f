package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
	"github.com/RockerInt/Properties/internal/propertiespb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// errEmptyResponse covers a well-formed RPC reply that carries no
// property; the servers never produce one, a misbehaving upstream might.
var errEmptyResponse = &StatusError{
	Code:    http.StatusInternalServerError,
	Message: "empty response from property service",
}

// grpcPropertyClient reaches the property service over its gRPC surface.
// Outcomes are translated back into the HTTP status taxonomy so callers
// behave identically on either transport.
type grpcPropertyClient struct {
	conn   *grpc.ClientConn
	stub   propertiespb.PropertyServiceClient
	logger *slog.Logger
}

func NewGRPCPropertyClient(addr string, logger *slog.Logger) (PropertyClient, error) {
	conn, err := grpc.Dial(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(propertiespb.CodecName)),
	)
	if err != nil {
		return nil, err
	}
	return &grpcPropertyClient{
		conn:   conn,
		stub:   propertiespb.NewPropertyServiceClient(conn),
		logger: logger,
	}, nil
}

func (c *grpcPropertyClient) List(ctx context.Context, p *params.PropertyParams) ([]models.PropertyComplete, error) {
	resp, err := c.stub.GetProperties(ctx, &propertiespb.GetPropertiesRequest{Filter: paramsToFilter(p)})
	if err != nil {
		return nil, translateStatus(err)
	}
	complete := make([]models.PropertyComplete, 0, len(resp.Properties))
	for _, property := range resp.Properties {
		if property == nil {
			continue
		}
		complete = append(complete, completeFromWire(property))
	}
	return complete, nil
}

func (c *grpcPropertyClient) Get(ctx context.Context, id string) (*models.PropertyComplete, error) {
	resp, err := c.stub.GetProperty(ctx, &propertiespb.GetPropertyRequest{Id: id})
	if err != nil {
		return nil, translateStatus(err)
	}
	if resp.Property == nil {
		return nil, errEmptyResponse
	}
	complete := completeFromWire(resp.Property)
	return &complete, nil
}

func (c *grpcPropertyClient) Create(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error) {
	resp, err := c.stub.CreateProperty(ctx, &propertiespb.PropertyRequest{Property: wireFromLite(property)})
	if err != nil {
		return nil, translateStatus(err)
	}
	if resp.Property == nil {
		return nil, errEmptyResponse
	}
	lite := liteFromWire(resp.Property)
	return &lite, nil
}

func (c *grpcPropertyClient) Update(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error) {
	resp, err := c.stub.UpdateProperty(ctx, &propertiespb.PropertyRequest{Property: wireFromLite(property)})
	if err != nil {
		return nil, translateStatus(err)
	}
	if resp.Property == nil {
		return nil, errEmptyResponse
	}
	lite := liteFromWire(resp.Property)
	return &lite, nil
}

func (c *grpcPropertyClient) Delete(ctx context.Context, id string) (bool, error) {
	resp, err := c.stub.DeleteProperty(ctx, &propertiespb.DeletePropertyRequest{Id: id})
	if err != nil {
		return false, translateStatus(err)
	}
	return resp.Success, nil
}

func (c *grpcPropertyClient) Close() error { return c.conn.Close() }

// paramsToFilter maps the query parameters onto the wire filter. Nil
// stays nil: it selects the whole collection.
func paramsToFilter(p *params.PropertyParams) *propertiespb.PropertyFilter {
	if p == nil {
		return nil
	}
	return &propertiespb.PropertyFilter{
		Paging:     p.Paging,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		MinYear:    p.MinYear,
		MaxYear:    p.MaxYear,
		MinPrice:   p.MinPrice,
		MaxPrice:   p.MaxPrice,
	}
}

// translateStatus maps RPC status codes back onto the HTTP statuses the
// REST transport would have produced for the same outcome.
func translateStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	var code int
	switch st.Code() {
	case codes.NotFound:
		code = http.StatusNotFound
	case codes.InvalidArgument:
		code = http.StatusBadRequest
	case codes.AlreadyExists:
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}
	return &StatusError{Code: code, Message: st.Message()}
}
